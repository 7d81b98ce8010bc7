package http

import (
	"log/slog"
	"os"

	"github.com/gmt-app/puantaj-backend-go/internal/handler/http/middleware"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	accessHandler AccessHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	scheduleHandler ScheduleHandler,
	timesheetHandler TimesheetHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "puantaj-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/access/token", accessHandler.IssueToken)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Delete("/access/token", accessHandler.RevokeToken)

			r.Route("/events", func(r chi.Router) {
				r.Post("/", attendanceHandler.RecordEvent)
			})

			r.Route("/holiday-overrides", func(r chi.Router) {
				r.Post("/", attendanceHandler.OverrideHoliday)
				r.Delete("/{id}", attendanceHandler.RemoveHolidayOverride)
			})

			r.Route("/leave-periods", func(r chi.Router) {
				r.Post("/", leaveHandler.CreatePeriod)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Put("/", scheduleHandler.SetShift)
			})

			r.Route("/plan-entries", func(r chi.Router) {
				r.Put("/", scheduleHandler.UpsertPlanEntry)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/monthly", timesheetHandler.Monthly)
				r.Get("/weekly", timesheetHandler.Weekly)
				r.Get("/daily", timesheetHandler.Daily)
			})

			r.Get("/anomalies", timesheetHandler.Anomalies)
			r.Get("/suggestions/checkout", timesheetHandler.SuggestCheckOut)
			r.Get("/calendar/upcoming", calendarHandler.Upcoming)
		})
	})

	return r
}
