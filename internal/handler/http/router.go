package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/handler/http/middleware"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	employeeRepo employee.EmployeeRepository,
	authHandler AuthHandler,
	payrollHandler PayrollHandler,
	payslipHandler PayslipHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "slipsalary"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Slip Salary App - Connected"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Get("/debug-jwt", authHandler.DebugJWT)
	})

	// Manager-authenticated report endpoints. The original API exposes these
	// on both GET and POST.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
		r.Use(middleware.RequireManager(employeeRepo))

		getAndPost := func(pattern string, h http.HandlerFunc) {
			r.Get(pattern, h)
			r.Post(pattern, h)
		}

		getAndPost("/createAggregatedEmployeeData", payrollHandler.CreateAggregated)
		getAndPost("/sendAggregatedEmployeeData", payrollHandler.SendAggregated)
		getAndPost("/createPdfForEmployees", payslipHandler.CreatePayslips)
		getAndPost("/sendPdfToEmployees", payslipHandler.SendPayslips)
	})

	return r
}
