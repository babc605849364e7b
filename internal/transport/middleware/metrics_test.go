package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campuskit/gatepass-management/internal/transport/middleware"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("Metrics Middleware", func() {
	var router chi.Router

	BeforeEach(func() {
		router = chi.NewRouter()
		router.Use(middleware.Metrics)
		router.Patch("/gatepasses/{passId}/approve", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	scrape := func() string {
		w := httptest.NewRecorder()
		promhttp.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		return w.Body.String()
	}

	It("should label requests with the route pattern, not the raw path", func() {
		for _, passID := range []string{"GP-20260830-0001", "GP-20260830-0002"} {
			req := httptest.NewRequest(http.MethodPatch, "/gatepasses/"+passID+"/approve", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
		}

		body := scrape()
		Expect(body).To(ContainSubstring(`path="/gatepasses/{passId}/approve"`))
		Expect(body).NotTo(ContainSubstring("GP-20260830-0001"))
	})
})
