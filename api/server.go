/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the admin frontend

ROUTE GROUPS:
  /api/members/*       Membership roll, bills, eligibility
  /api/billing/*       Bulk runs and generated bills
  /api/workhours/*     Volunteer hour ledger
  /api/encumbrances/*  Disciplinary holds
  /api/eligibility/*   Committee review report
  /api/periods/*       Club calendar status
  /api/settings        Dues configuration
  /api/waitlist/*      Prospective members
  /api/scenarios/*     Demo scenarios

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Member routes
		r.Route("/members", func(r chi.Router) {
			r.Get("/", h.ListMembers)
			r.Post("/", h.SaveMember)
			r.Get("/{id}", h.GetMember)
			r.Get("/{id}/bill", h.PreviewBill)
			r.Get("/{id}/eligibility", h.CheckEligibility)
			r.Post("/{id}/convert", h.ConvertToLife)
			r.Get("/{id}/workhours", h.ListMemberWorkHours)
			r.Get("/{id}/encumbrances", h.ListMemberEncumbrances)
		})

		// Billing routes
		r.Route("/billing", func(r chi.Router) {
			r.Post("/run", h.RunBilling)
			r.Get("/records", h.ListBillingRecords)
		})

		// Work-hour routes
		r.Route("/workhours", func(r chi.Router) {
			r.Post("/", h.SubmitWorkHours)
			r.Post("/{id}/review", h.ReviewWorkHours)
		})

		// Encumbrance routes
		r.Route("/encumbrances", func(r chi.Router) {
			r.Post("/", h.PlaceEncumbrance)
			r.Post("/{id}/remove", h.RemoveEncumbrance)
		})

		// Eligibility routes
		r.Route("/eligibility", func(r chi.Router) {
			r.Get("/report", h.EligibilityReport)
		})

		// Calendar routes
		r.Route("/periods", func(r chi.Router) {
			r.Get("/current", h.CurrentPeriods)
		})

		// Settings routes
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.UpdateSettings)
		})

		// Waitlist routes
		r.Route("/waitlist", func(r chi.Router) {
			r.Get("/", h.ListWaitlist)
			r.Post("/", h.SaveWaitlistEntry)
			r.Delete("/{id}", h.DeleteWaitlistEntry)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
