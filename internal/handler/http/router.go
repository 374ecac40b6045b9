package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	tipsHandler TipsHandler,
	rosterHandler RosterHandler,
	shiftHandler ShiftHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
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

		r.Route("/tips", func(r chi.Router) {
			r.Post("/", tipsHandler.RecordTips)
			r.Put("/{id}", tipsHandler.UpdateTips)
			r.Get("/week/{year}/{weekNumber}", tipsHandler.GetWeeklyTips)

			r.Route("/distribution", func(r chi.Router) {
				r.Get("/current", tipsHandler.GetCurrentDistribution)
				r.Get("/week/{year}/{weekNumber}", tipsHandler.GetDistribution)
			})
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/current", rosterHandler.GetCurrentRoster)
			r.Get("/week/{year}/{weekNumber}", rosterHandler.GetWeeklyRoster)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.ListShifts)
			r.Post("/", shiftHandler.CreateShift)
			r.Get("/week/{year}/{weekNumber}", shiftHandler.GetShiftsByWeek)
			r.Get("/{id}", shiftHandler.GetShift)
			r.Put("/{id}", shiftHandler.UpdateShift)
			r.Delete("/{id}", shiftHandler.DeleteShift)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Get("/currencies", tipsHandler.ListCurrencies)
	})
	return r
}
