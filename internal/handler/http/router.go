package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/config"
	"github.com/staffhub-ops/hr-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/{staffID}", scheduleHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", scheduleHandler.Upsert)
					r.Delete("/{staffID}/{date}", scheduleHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", scheduleHandler.CreateHoliday)
					r.Delete("/{id}", scheduleHandler.DeleteHoliday)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/{staffID}", leaveHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			// The reconciliation, overtime and payroll surfaces are
			// manager-only end to end.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/import/analyze", attendanceHandler.Analyze)
					r.Post("/import/apply", attendanceHandler.Apply)

					r.Route("/overtime", func(r chi.Router) {
						r.Get("/candidates", attendanceHandler.Candidates)
						r.Post("/bulk", attendanceHandler.BulkDecide)
						r.Post("/{id}/approve", attendanceHandler.ApproveOvertime)
						r.Post("/{id}/reject", attendanceHandler.RejectOvertime)
						r.Post("/{id}/revert", attendanceHandler.RevertOvertime)
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/generate", payrollHandler.Generate)
					r.Post("/finalize", payrollHandler.Finalize)
					r.Get("/payslips", payrollHandler.ListPayslips)

					r.Route("/loans", func(r chi.Router) {
						r.Post("/", payrollHandler.CreateLoan)
						r.Post("/{id}/close", payrollHandler.CloseLoan)
					})
					r.Route("/advances", func(r chi.Router) {
						r.Post("/", payrollHandler.CreateAdvance)
						r.Post("/{id}/decide", payrollHandler.DecideAdvance)
					})
					r.Route("/adjustments", func(r chi.Router) {
						r.Post("/", payrollHandler.CreateAdjustment)
						r.Delete("/{id}", payrollHandler.DeleteAdjustment)
					})
				})
			})
		})
	})
	return r
}
