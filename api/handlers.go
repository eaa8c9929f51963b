/*
handlers.go - HTTP API handlers for the membership system

PURPOSE:
  Exposes the membership roll, billing, work-hour ledger, encumbrances,
  eligibility reviews, and the waitlist via REST. Handles HTTP
  request/response and JSON serialization, delegates to roster services.

ENDPOINTS:
  Members:
    GET    /api/members                    List all members
    POST   /api/members                    Create or update a member
    GET    /api/members/{id}               Get member details
    GET    /api/members/{id}/bill          Preview the member's bill
    GET    /api/members/{id}/eligibility   Life-eligibility check
    POST   /api/members/{id}/convert       Convert to Life membership
    GET    /api/members/{id}/workhours     Member's work-hour entries
    GET    /api/members/{id}/encumbrances  Member's encumbrances

  Billing:
    POST   /api/billing/run                Generate bills for all members
    GET    /api/billing/records            List generated bills

  Work hours:
    POST   /api/workhours                  Submit hours
    POST   /api/workhours/{id}/review      Approve or reject

  Encumbrances:
    POST   /api/encumbrances               Place a hold
    POST   /api/encumbrances/{id}/remove   Lift a hold

  Eligibility:
    GET    /api/eligibility/report         Committee review report

  Calendar:
    GET    /api/periods/current            Fiscal/work year and window status

  Settings:
    GET    /api/settings                   Current dues configuration
    PUT    /api/settings                   Update dues configuration

  Waitlist:
    GET    /api/waitlist                   List prospects
    POST   /api/waitlist                   Add a prospect
    DELETE /api/waitlist/{id}              Remove a prospect

  Scenarios:
    GET    /api/scenarios                  List demo scenarios
    POST   /api/scenarios/load             Load a demo scenario

DATE OVERRIDE:
  Read endpoints accept ?as_of=YYYY-MM-DD to evaluate the calendars and
  rules at a different date. Useful for demos and dry runs.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record not found
  - 422: Rule violations (ineligible conversion)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - scenarios.go: Demo scenario loaders
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store       roster.Store
	Hours       *roster.WorkHourLedger
	Billing     *roster.BillingService
	Eligibility *roster.EligibilityService

	// Now is overridable in tests; defaults to engine.Today.
	Now func() engine.Date

	log zerolog.Logger

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler wires a handler around a store.
func NewHandler(store roster.Store, log zerolog.Logger) *Handler {
	hours := roster.NewWorkHourLedger(store, log)
	return &Handler{
		Store:       store,
		Hours:       hours,
		Billing:     roster.NewBillingService(store, hours, log),
		Eligibility: roster.NewEligibilityService(store, log),
		Now:         engine.Today,
		log:         log.With().Str("component", "api").Logger(),
	}
}

// asOf resolves the evaluation date: the as_of query parameter if present
// and valid, otherwise today.
func (h *Handler) asOf(r *http.Request) (engine.Date, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return h.Now(), nil
	}
	return engine.ParseDate(raw)
}

// =============================================================================
// MEMBER HANDLERS
// =============================================================================

// ListMembers returns all members.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	members, err := h.Store.ListMembers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list members", err)
		return
	}

	dtos := make([]MemberDTO, len(members))
	for i, m := range members {
		dtos[i] = toMemberDTO(m, today)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetMember returns a single member.
func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	m, err := h.Store.GetMember(r.Context(), chi.URLParam(r, "id"))
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get member", err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberDTO(*m, today))
}

// SaveMember creates or updates a member.
func (h *Handler) SaveMember(w http.ResponseWriter, r *http.Request) {
	var req SaveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record := roster.MemberRecord{
		ID:                       strings.TrimSpace(req.ID),
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Email:                    req.Email,
		Tier:                     engine.Tier(req.Tier),
		Status:                   engine.Status(req.Status),
		AssessmentYearsCompleted: req.AssessmentYearsCompleted,
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
	}

	if req.DateOfBirth != "" {
		d, err := engine.ParseDate(req.DateOfBirth)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date_of_birth", err)
			return
		}
		record.DateOfBirth = d
	}
	if req.OriginalJoinDate != "" {
		d, err := engine.ParseDate(req.OriginalJoinDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid original_join_date", err)
			return
		}
		record.OriginalJoinDate = d
	}

	// Preserve CreatedAt when updating an existing member
	if existing, err := h.Store.GetMember(r.Context(), record.ID); err == nil {
		record.CreatedAt = existing.CreatedAt
	}

	if err := record.Snapshot().Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid member", err)
		return
	}

	if err := h.Store.SaveMember(r.Context(), record); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save member", err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberDTO(record, h.Now()))
}

// =============================================================================
// BILLING HANDLERS
// =============================================================================

// PreviewBill computes a member's bill without persisting it.
// GET /api/members/{id}/bill
func (h *Handler) PreviewBill(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	result, err := h.Billing.Preview(r.Context(), chi.URLParam(r, "id"), today)
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	}
	if errors.Is(err, engine.ErrInvalidMember) {
		writeError(w, http.StatusBadRequest, "Member record is incomplete", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute bill", err)
		return
	}

	writeJSON(w, http.StatusOK, toBillingResultDTO(result))
}

// RunBilling generates bills for every billable member.
// POST /api/billing/run
func (h *Handler) RunBilling(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	summary, err := h.Billing.Run(r.Context(), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Billing run failed", err)
		return
	}

	dto := RunSummaryDTO{
		FiscalYear: summary.FiscalYear,
		Generated:  summary.Generated,
		Skipped:    summary.Skipped,
		Failures:   make([]RunFailureDTO, len(summary.Failures)),
	}
	for i, f := range summary.Failures {
		dto.Failures[i] = RunFailureDTO{MemberID: f.MemberID, Error: f.Err.Error()}
	}
	writeJSON(w, http.StatusOK, dto)
}

// ListBillingRecords returns generated bills, optionally filtered by
// fiscal year.
// GET /api/billing/records?fiscal_year=2025-2026
func (h *Handler) ListBillingRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListBillingRecords(r.Context(), r.URL.Query().Get("fiscal_year"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list billing records", err)
		return
	}

	dtos := make([]BillingRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toBillingRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// WORK-HOUR HANDLERS
// =============================================================================

// SubmitWorkHours logs volunteer hours for a member.
// POST /api/workhours
func (h *Handler) SubmitWorkHours(w http.ResponseWriter, r *http.Request) {
	var req SubmitWorkHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hours", err)
		return
	}

	if _, err := h.Store.GetMember(r.Context(), req.MemberID); roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up member", err)
		return
	}

	entry := roster.WorkHourEntry{
		ID:          req.ID,
		MemberID:    req.MemberID,
		Date:        date,
		Hours:       hours,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := h.Hours.Submit(r.Context(), entry); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to submit hours", err)
		return
	}

	entry.Status = roster.EntrySubmitted
	writeJSON(w, http.StatusCreated, toWorkHourEntryDTO(entry))
}

// ReviewWorkHours approves or rejects an entry.
// POST /api/workhours/{id}/review
func (h *Handler) ReviewWorkHours(w http.ResponseWriter, r *http.Request) {
	var req ReviewWorkHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	err := h.Hours.Review(r.Context(), id, req.Reviewer, req.Approve)
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Work-hour entry not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to review entry", err)
		return
	}

	entry, err := h.Store.GetWorkHourEntry(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkHourEntryDTO(*entry))
}

// ListMemberWorkHours returns a member's entries, optionally scoped to a
// work year.
// GET /api/members/{id}/workhours?work_year=2025-2026
func (h *Handler) ListMemberWorkHours(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListWorkHourEntries(r.Context(),
		chi.URLParam(r, "id"), r.URL.Query().Get("work_year"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list work hours", err)
		return
	}

	dtos := make([]WorkHourEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toWorkHourEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ENCUMBRANCE HANDLERS
// =============================================================================

// PlaceEncumbrance places a disciplinary hold on a member.
// POST /api/encumbrances
func (h *Handler) PlaceEncumbrance(w http.ResponseWriter, r *http.Request) {
	var req PlaceEncumbranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	placedOn, err := engine.ParseDate(req.PlacedOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid placed_on date", err)
		return
	}

	if _, err := h.Store.GetMember(r.Context(), req.MemberID); roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to look up member", err)
		return
	}

	e := roster.Encumbrance{
		ID:        req.ID,
		MemberID:  req.MemberID,
		Reason:    req.Reason,
		PlacedOn:  placedOn,
		CreatedAt: time.Now(),
	}
	if err := h.Store.SaveEncumbrance(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to place encumbrance", err)
		return
	}

	h.log.Info().Str("member", e.MemberID).Str("encumbrance", e.ID).Msg("encumbrance placed")
	writeJSON(w, http.StatusCreated, toEncumbranceDTO(e))
}

// RemoveEncumbrance lifts a hold by setting its removal date.
// POST /api/encumbrances/{id}/remove
func (h *Handler) RemoveEncumbrance(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	memberID := r.URL.Query().Get("member_id")
	id := chi.URLParam(r, "id")

	encs, err := h.Store.ListEncumbrances(r.Context(), memberID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list encumbrances", err)
		return
	}

	for _, e := range encs {
		if e.ID != id {
			continue
		}
		e.RemovedOn = &today
		if err := h.Store.SaveEncumbrance(r.Context(), e); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to remove encumbrance", err)
			return
		}
		h.log.Info().Str("member", e.MemberID).Str("encumbrance", e.ID).Msg("encumbrance removed")
		writeJSON(w, http.StatusOK, toEncumbranceDTO(e))
		return
	}

	writeError(w, http.StatusNotFound, "Encumbrance not found", nil)
}

// ListMemberEncumbrances returns a member's encumbrance history.
// GET /api/members/{id}/encumbrances
func (h *Handler) ListMemberEncumbrances(w http.ResponseWriter, r *http.Request) {
	encs, err := h.Store.ListEncumbrances(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list encumbrances", err)
		return
	}

	dtos := make([]EncumbranceDTO, len(encs))
	for i, e := range encs {
		dtos[i] = toEncumbranceDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ELIGIBILITY HANDLERS
// =============================================================================

// CheckEligibility returns one member's Life-eligibility determination.
// GET /api/members/{id}/eligibility
func (h *Handler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	m, err := h.Store.GetMember(r.Context(), chi.URLParam(r, "id"))
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get member", err)
		return
	}

	encumbered, err := roster.HasActiveEncumbrance(r.Context(), h.Store, m.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check encumbrances", err)
		return
	}

	result := engine.CheckLifeEligibility(m.Snapshot(), encumbered, today)
	writeJSON(w, http.StatusOK, EligibilityDTO{
		MemberID: m.ID,
		Name:     memberName(*m),
		Eligible: result.Eligible,
		Rule:     string(result.Rule),
		Reason:   result.Reason,
	})
}

// ConvertToLife converts an eligible member to Life membership.
// POST /api/members/{id}/convert
func (h *Handler) ConvertToLife(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	record, err := h.Eligibility.ConvertToLife(r.Context(), chi.URLParam(r, "id"), today)
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Member not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Conversion refused", err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberDTO(*record, today))
}

// EligibilityReport returns the committee's review report.
// GET /api/eligibility/report
func (h *Handler) EligibilityReport(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	eligible, near, err := h.Eligibility.Review(r.Context(), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build report", err)
		return
	}

	report := ReviewReportDTO{
		AsOf:     today.String(),
		Eligible: make([]EligibilityDTO, len(eligible)),
		Near:     make([]ForecastDTO, len(near)),
	}
	for i, e := range eligible {
		report.Eligible[i] = EligibilityDTO{
			MemberID: e.Member.ID,
			Name:     memberName(e.Member),
			Eligible: true,
			Rule:     string(e.Eligibility.Rule),
			Reason:   e.Eligibility.Reason,
		}
	}
	for i, n := range near {
		report.Near[i] = ForecastDTO{
			MemberID:         n.Member.ID,
			Name:             memberName(n.Member),
			ConsecutiveYears: n.Forecast.ConsecutiveYears,
			Age:              n.Forecast.Age,
			Message:          n.Forecast.Message,
		}
	}
	writeJSON(w, http.StatusOK, report)
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// CurrentPeriods reports where today falls in the club calendars.
// GET /api/periods/current
func (h *Handler) CurrentPeriods(w http.ResponseWriter, r *http.Request) {
	today, err := h.asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
		return
	}

	collection := engine.CollectionStatus(today)
	review := engine.WorkHourReviewStatus(today)

	writeJSON(w, http.StatusOK, PeriodsDTO{
		AsOf:             today.String(),
		FiscalYear:       engine.FiscalYear(today),
		WorkYear:         review.WorkYear,
		BillingQuarter:   engine.BillingQuarter(today),
		Collection:       string(collection.Status),
		CollectionNote:   collection.Message,
		CollectionDue:    collection.Deadline.String(),
		WorkHours:        string(review.Status),
		WorkHoursNote:    review.Message,
		WorkHourDeadline: review.ReviewDeadline.String(),
	})
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the effective dues configuration: stored raw values
// merged over defaults.
// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	raw, err := h.Store.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	s := engine.ParseSettings(raw)
	writeJSON(w, http.StatusOK, map[string]string{
		engine.KeyRegularDues:       s.RegularDues.String(),
		engine.KeyAbsenteeDues:      s.AbsenteeDues.String(),
		engine.KeyWorkHoursRequired: s.WorkHoursRequired.String(),
		engine.KeyBuyoutRate:        s.BuyoutRate.String(),
		engine.KeyAssessmentAmount:  s.AssessmentAmount.String(),
		engine.KeyCabaretTaxRate:    s.CabaretTaxRate.String(),
	})
}

// UpdateSettings stores raw setting values. Values are not validated
// here; the engine falls back to defaults for anything unusable.
// PUT /api/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	for k, v := range req {
		if err := h.Store.PutSetting(r.Context(), k, v); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to store setting", err)
			return
		}
	}

	h.GetSettings(w, r)
}

// =============================================================================
// WAITLIST HANDLERS
// =============================================================================

// ListWaitlist returns the waitlist ordered by position.
// GET /api/waitlist
func (h *Handler) ListWaitlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListWaitlist(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list waitlist", err)
		return
	}

	dtos := make([]WaitlistEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toWaitlistEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveWaitlistEntry adds or updates a prospect.
// POST /api/waitlist
func (h *Handler) SaveWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	var req SaveWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		writeError(w, http.StatusBadRequest, "Waitlist entry id is required", nil)
		return
	}

	appliedOn, err := engine.ParseDate(req.AppliedOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid applied_on date", err)
		return
	}

	e := roster.WaitlistEntry{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		AppliedOn: appliedOn,
		Position:  req.Position,
		CreatedAt: time.Now(),
	}
	if err := h.Store.SaveWaitlistEntry(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save waitlist entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, toWaitlistEntryDTO(e))
}

// DeleteWaitlistEntry removes a prospect.
// DELETE /api/waitlist/{id}
func (h *Handler) DeleteWaitlistEntry(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteWaitlistEntry(r.Context(), chi.URLParam(r, "id"))
	if roster.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Waitlist entry not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete waitlist entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
