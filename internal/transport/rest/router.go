package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campuskit/gatepass-management/internal"
	"github.com/campuskit/gatepass-management/internal/gatelog"
	"github.com/campuskit/gatepass-management/internal/gatepass"
	"github.com/campuskit/gatepass-management/internal/transport/middleware"
	"github.com/campuskit/gatepass-management/internal/transport/swagger"
	"github.com/campuskit/gatepass-management/internal/user"
)

type RouterDependencies struct {
	UserHandler     *user.Handler
	GatePassHandler *gatepass.Handler
	GateLogHandler  *gatelog.Handler
	DB              *sql.DB
	Logger          *slog.Logger
	Config          *internal.Config
}

// RegisterAllRoutes mounts middleware, operational endpoints and the
// versioned API on a fresh chi router.
func RegisterAllRoutes(deps RouterDependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	if deps.Config == nil || deps.Config.Observability.Metrics.Enabled {
		r.Use(middleware.Metrics)
	}

	healthHandler := NewHealthHandler(deps.DB)

	metricsPath := "/metrics"
	if deps.Config != nil && deps.Config.Observability.Metrics.Path != "" {
		metricsPath = deps.Config.Observability.Metrics.Path
	}
	r.Handle(metricsPath, promhttp.Handler())

	// Serve OpenAPI spec at root (outside API prefix)
	r.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	r.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", healthHandler.healthCheckHandler)
		api.Get("/ping", healthHandler.pingHandler)

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", deps.UserHandler.Register)
			auth.Post("/login", deps.UserHandler.Login)
		})

		api.Route("/gatepasses", func(gp chi.Router) {
			gp.Post("/", deps.GatePassHandler.Create)
			gp.Get("/student/{studentId}", deps.GatePassHandler.GetByStudent)
			gp.Get("/department/{department}", deps.GatePassHandler.GetByDepartment)
			gp.Get("/{passId}", deps.GatePassHandler.GetOne)
			gp.Patch("/{passId}/approve", deps.GatePassHandler.Approve)
			gp.Patch("/{passId}/reject", deps.GatePassHandler.Reject)
		})

		api.Get("/search/{query}", deps.GateLogHandler.Search)

		api.Route("/logs", func(logs chi.Router) {
			logs.Get("/", deps.GateLogHandler.List)
			logs.Post("/", deps.GateLogHandler.CreateOrGet)
			logs.Patch("/{passId}/entry", deps.GateLogHandler.MarkEntry)
			logs.Patch("/{passId}/exit", deps.GateLogHandler.MarkExit)
		})
	})

	return r
}
