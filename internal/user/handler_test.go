package user_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	userDatamodel "github.com/campuskit/gatepass-management/internal/core/datamodel/user"
	"github.com/campuskit/gatepass-management/internal/user"
	userPostgres "github.com/campuskit/gatepass-management/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("User Handler Integration", func() {
	var (
		db      *gorm.DB
		service *user.Service
		handler *user.Handler
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		repo := userPostgres.NewUserRepository(db)
		service = user.NewService(repo, slogger)
		handler = user.NewHandler(service)
	})

	registerBody := `{"name":"Alice Kumar","email":"alice@campus.edu","password":"secret123","role":"student","rollNumber":"R100","department":"CSE"}`

	Describe("POST /auth/register", func() {
		It("should register a user and omit sensitive fields", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var response struct {
				Message string          `json:"message"`
				User    user.PublicUser `json:"user"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Message).To(Equal("User registered successfully"))
			Expect(response.User.ID).To(BeNumerically(">", 0))
			Expect(response.User.Email).To(Equal("alice@campus.edu"))
			Expect(w.Body.String()).NotTo(ContainSubstring("secret123"))
		})

		It("should reject a duplicate email with 400", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
			handler.Register(httptest.NewRecorder(), req)

			dup := `{"name":"Other","email":"alice@campus.edu","password":"secret123","role":"student","rollNumber":"R101"}`
			req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(dup))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var response map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["error"]).To(ContainSubstring("Email already registered"))
		})

		It("should reject malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /auth/login", func() {
		BeforeEach(func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("should log in with a roll number credential", func() {
			body := `{"email":"R100","password":"secret123","role":"student"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Message string    `json:"message"`
				User    user.User `json:"user"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Message).To(Equal("Login successful"))
			Expect(response.User.RollNumber).To(Equal("R100"))
		})

		It("should respond 401 for a wrong password", func() {
			body := `{"email":"alice@campus.edu","password":"wrongpass","role":"student"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should respond 401 when the role does not match", func() {
			body := `{"email":"alice@campus.edu","password":"secret123","role":"hod"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
