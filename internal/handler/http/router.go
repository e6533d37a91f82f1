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
	"github.com/pontohr/backend-go/internal/config"
	"github.com/pontohr/backend-go/internal/handler/http/middleware"
	"github.com/pontohr/backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeTrackingHandler TimeTrackingHandler,
	absenceHandler AbsenceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pontohr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded absence documents
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		r.Post("/companies/register", employeeHandler.RegisterCompany)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", employeeHandler.Register)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", timeTrackingHandler.Punch)
				r.Get("/", timeTrackingHandler.List)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", absenceHandler.Create)
				r.Get("/", absenceHandler.List)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Patch("/{id}/status", absenceHandler.UpdateStatus)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", reportHandler.Monthly)
				r.Get("/monthly/pdf", reportHandler.MonthlyPDF)
			})
		})
	})

	return r
}
