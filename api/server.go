/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. Logger:     Structured request logging (zap)
  4. CORS:       Cross-origin requests for the planner frontend

ROUTE GROUPS:
  /api/employees/*       Employee management
  /api/shifts/*          Shift CRUD and bulk operations
  /api/availability/*    Absence records
  /api/settings/*        Scheduling configuration
  /api/validate          Rule-engine entry points
  /api/rotation/*        Responsible rotation
  /api/schedule/*        Auto-scheduler
  /api/overtime/*        Night-shift overtime arithmetic
  /api/weeks/*           Bi-weekly calendar context
  /api/hours             Hour reports

SECURITY NOTE:
  No authentication middleware. The planner runs on a trusted LAN.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(h.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
		})

		// Shift routes
		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Post("/", h.CreateShift)
			r.Delete("/", h.DeleteShiftsInRange)
			r.Put("/{id}", h.UpdateShift)
			r.Delete("/{id}", h.DeleteShift)
		})

		// Availability routes
		r.Route("/availability", func(r chi.Router) {
			r.Get("/", h.ListAbsences)
			r.Post("/", h.UpsertAbsence)
			r.Delete("/", h.DeleteAbsence)
		})

		// Settings routes
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.PutSettings)
			r.Put("/{key}", h.PutSettingsKey)
		})

		// Rule-engine routes
		r.Post("/validate", h.ValidateShift)
		r.Get("/validation/summary", h.ValidationSummary)

		// Rotation routes
		r.Route("/rotation", func(r chi.Router) {
			r.Get("/responsible", h.GetResponsible)
			r.Put("/assignments", h.PinResponsible)
			r.Delete("/assignments", h.UnpinResponsible)
			r.Put("/start", h.SetRotationStart)
		})

		// Auto-scheduler routes
		r.Post("/schedule/apply", h.ApplySchedule)

		// Overtime routes
		r.Route("/overtime", func(r chi.Router) {
			r.Get("/night-credit", h.NightCredit)
			r.Post("/weekly", h.WeeklyOvertime)
		})

		// Calendar and reporting routes
		r.Get("/weeks/{monday}", h.WeekContext)
		r.Get("/hours", h.EmployeeHours)

		// Demo data (development only)
		r.Post("/seed", h.Seed)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
