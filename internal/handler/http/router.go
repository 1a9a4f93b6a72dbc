package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/handler/http/middleware"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Finance    FinanceHandler
	Payment    PaymentHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
	Setting    SettingHandler
}

func NewRouter(jwtService jwt.Service, env string, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ironworks-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Get("/{id}", h.Worker.Get)
				r.Put("/{id}", h.Worker.Update)
				r.Post("/{id}/deactivate", h.Worker.Deactivate)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListByDate)
				r.Get("/range", h.Attendance.ListRange)
				r.Post("/mark", h.Attendance.Mark)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.Finance.List)
				r.Post("/", h.Finance.Create)
				r.Get("/expense-totals", h.Finance.ExpenseTotals)
			})

			r.Route("/worker-payments", func(r chi.Router) {
				r.Get("/", h.Payment.List)
				r.Get("/range", h.Payment.ListRange)
				r.Post("/", h.Payment.Create)
			})

			r.Get("/payroll", h.Payroll.Calculate)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", h.Dashboard.Summary)
				r.Get("/notifications", h.Dashboard.Notifications)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/{key}", h.Setting.Get)
				r.Put("/{key}", h.Setting.Set)
			})
		})
	})

	return r
}
