/*
scenarios.go - Demo scenario loaders

PURPOSE:
  Seeds the store with small rosters that exercise the interesting
  rules: longevity conversions, mid-year transitions, absentee billing,
  quarter-join proration, and encumbrance holds. Used by the demo UI
  and by manual API exploration.

DESIGN:
  Each scenario is a named set of members (plus hours and holds) with
  scenario-scoped IDs. Loading a scenario upserts its records; it does
  not wipe the database.

SEE ALSO:
  - handlers.go: Endpoint helpers
  - server.go: /api/scenarios routes
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
)

type scenario struct {
	ID          string
	Name        string
	Description string
	Load        func(ctx context.Context, store roster.Store) error
}

func scenarios() []scenario {
	return []scenario{
		{
			ID:          "longevity-conversion",
			Name:        "Longevity conversion",
			Description: "A 35-year member ready for Life, and a 28-year member two years out",
			Load:        loadLongevityScenario,
		},
		{
			ID:          "mid-year-transition",
			Name:        "Mid-year transition",
			Description: "A member whose 30th anniversary lands mid billing year, billed with reverse proration",
			Load:        loadTransitionScenario,
		},
		{
			ID:          "billing-mix",
			Name:        "Billing mix",
			Description: "Absentee flat dues, a fresh quarter-join with proration, and a work-hour shortfall buyout",
			Load:        loadBillingScenario,
		},
		{
			ID:          "encumbered",
			Name:        "Encumbered member",
			Description: "A fully qualified member blocked from Life conversion by an active hold",
			Load:        loadEncumberedScenario,
		},
	}
}

func member(id, first, last string, tier engine.Tier, joined engine.Date) roster.MemberRecord {
	return roster.MemberRecord{
		ID:               id,
		FirstName:        first,
		LastName:         last,
		Tier:             tier,
		Status:           engine.StatusActive,
		OriginalJoinDate: joined,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func loadLongevityScenario(ctx context.Context, store roster.Store) error {
	long := member("demo-long-1", "Eleanor", "Voss", engine.TierRegular, engine.NewDate(1990, time.May, 1))
	long.AssessmentYearsCompleted = 5

	near := member("demo-long-2", "Martin", "Hale", engine.TierRegular, engine.NewDate(1997, time.September, 12))
	near.AssessmentYearsCompleted = 5

	for _, m := range []roster.MemberRecord{long, near} {
		if err := store.SaveMember(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func loadTransitionScenario(ctx context.Context, store roster.Store) error {
	m := member("demo-trans-1", "Ruth", "Calloway", engine.TierRegular, engine.NewDate(1996, time.July, 15))
	m.AssessmentYearsCompleted = 5
	return store.SaveMember(ctx, m)
}

func loadBillingScenario(ctx context.Context, store roster.Store) error {
	absentee := member("demo-bill-1", "Gordon", "Pryce", engine.TierAbsentee, engine.NewDate(2005, time.March, 20))
	absentee.AssessmentYearsCompleted = 5

	// Joined in the third billing quarter: half-rate proration
	fresh := member("demo-bill-2", "Ines", "Calder", engine.TierRegular, engine.NewDate(2025, time.October, 4))

	short := member("demo-bill-3", "Theo", "Branch", engine.TierRegular, engine.NewDate(2010, time.June, 1))
	short.AssessmentYearsCompleted = 5

	for _, m := range []roster.MemberRecord{absentee, fresh, short} {
		if err := store.SaveMember(ctx, m); err != nil {
			return err
		}
	}

	// Four approved hours toward the ten required
	entry := roster.WorkHourEntry{
		ID:          "demo-bill-3-wh-1",
		MemberID:    short.ID,
		Date:        engine.NewDate(2025, time.June, 15),
		Hours:       decimal.RequireFromString("4"),
		Description: "Grounds day",
		Status:      roster.EntryApproved,
		ReviewedBy:  "demo-officer",
		CreatedAt:   time.Now(),
	}
	return store.SaveWorkHourEntry(ctx, entry)
}

func loadEncumberedScenario(ctx context.Context, store roster.Store) error {
	m := member("demo-enc-1", "Vera", "Okafor", engine.TierRegular, engine.NewDate(1988, time.April, 3))
	m.AssessmentYearsCompleted = 5
	if err := store.SaveMember(ctx, m); err != nil {
		return err
	}

	return store.SaveEncumbrance(ctx, roster.Encumbrance{
		ID:        "demo-enc-1-hold",
		MemberID:  m.ID,
		Reason:    "Pending conduct review",
		PlacedOn:  engine.NewDate(2025, time.November, 2),
		CreatedAt: time.Now(),
	})
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

// ListScenarios returns the available demo scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	all := scenarios()
	dtos := make([]ScenarioDTO, len(all))
	for i, s := range all {
		dtos[i] = ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentScenario returns the most recently loaded scenario id.
// GET /api/scenarios/current
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"id": h.currentScenario})
}

// LoadScenario seeds the store with a scenario's records.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	for _, s := range scenarios() {
		if s.ID != req.ID {
			continue
		}
		if err := s.Load(r.Context(), h.Store); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
			return
		}
		h.currentScenario = s.ID
		h.log.Info().Str("scenario", s.ID).Msg("scenario loaded")
		writeJSON(w, http.StatusOK, ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description})
		return
	}

	writeError(w, http.StatusNotFound, "Unknown scenario", nil)
}
