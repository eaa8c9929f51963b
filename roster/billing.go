/*
billing.go - Bill generation over the rules engine

PURPOSE:
  Assembles the inputs the engine needs for one member (settings,
  approved hours, encumbrance flag), runs ComputeBilling, and persists
  the result as a BillingRecord for the current fiscal year.

BATCH ISOLATION:
  The annual run bills every active billable member. One member's bad
  data (an unparseable join date, a missing record) is reported and
  skipped; it never aborts the batch. The engine itself has no batch
  awareness - isolation lives here.
*/
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
)

// BillingService generates and persists bills.
type BillingService struct {
	store Store
	hours *WorkHourLedger
	log   zerolog.Logger
}

// NewBillingService wires a billing service.
func NewBillingService(store Store, hours *WorkHourLedger, log zerolog.Logger) *BillingService {
	return &BillingService{
		store: store,
		hours: hours,
		log:   log.With().Str("component", "billing").Logger(),
	}
}

// Preview computes a member's bill without persisting anything.
func (s *BillingService) Preview(ctx context.Context, memberID string, today engine.Date) (engine.BillingResult, error) {
	member, settings, hours, encumbered, err := s.inputs(ctx, memberID, today)
	if err != nil {
		return engine.BillingResult{}, err
	}
	return engine.ComputeBilling(member, settings, hours, encumbered, today), nil
}

// Generate computes and persists one member's bill for the fiscal year
// containing today.
func (s *BillingService) Generate(ctx context.Context, memberID string, today engine.Date) (*BillingRecord, error) {
	member, settings, hours, encumbered, err := s.inputs(ctx, memberID, today)
	if err != nil {
		return nil, err
	}

	result := engine.ComputeBilling(member, settings, hours, encumbered, today)
	record := BillingRecord{
		ID:          fmt.Sprintf("bill-%s-%s", memberID, engine.FiscalYear(today)),
		MemberID:    memberID,
		FiscalYear:  engine.FiscalYear(today),
		Result:      result,
		GeneratedAt: time.Now(),
	}
	if err := s.store.SaveBillingRecord(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info().Str("member", memberID).Str("fiscal_year", record.FiscalYear).
		Str("total", result.Total.String()).Msg("bill generated")
	return &record, nil
}

// RunSummary reports the outcome of a bulk billing run.
type RunSummary struct {
	FiscalYear string
	Generated  int
	Skipped    int // inactive or non-billable members
	Failures   []RunFailure
}

// RunFailure names a member whose bill could not be generated.
type RunFailure struct {
	MemberID string
	Err      error
}

// Run generates bills for every active billable member. Failures are
// collected, not fatal.
func (s *BillingService) Run(ctx context.Context, today engine.Date) (RunSummary, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{FiscalYear: engine.FiscalYear(today)}
	for _, m := range members {
		if !m.Snapshot().Billable() {
			summary.Skipped++
			continue
		}
		if _, err := s.Generate(ctx, m.ID, today); err != nil {
			summary.Failures = append(summary.Failures, RunFailure{MemberID: m.ID, Err: err})
			s.log.Warn().Str("member", m.ID).Err(err).Msg("bill generation failed, continuing run")
			continue
		}
		summary.Generated++
	}

	s.log.Info().Str("fiscal_year", summary.FiscalYear).
		Int("generated", summary.Generated).Int("skipped", summary.Skipped).
		Int("failed", len(summary.Failures)).Msg("billing run complete")
	return summary, nil
}

// inputs loads and validates everything ComputeBilling needs.
func (s *BillingService) inputs(ctx context.Context, memberID string, today engine.Date) (engine.Member, engine.Settings, decimal.Decimal, bool, error) {
	record, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return engine.Member{}, engine.Settings{}, decimal.Zero, false, err
	}

	member := record.Snapshot()
	if err := member.Validate(); err != nil {
		return engine.Member{}, engine.Settings{}, decimal.Zero, false, err
	}

	raw, err := s.store.GetSettings(ctx)
	if err != nil {
		return engine.Member{}, engine.Settings{}, decimal.Zero, false, err
	}
	settings := engine.ParseSettings(raw)

	hours, err := s.hours.ApprovedHours(ctx, memberID, engine.WorkYear(today))
	if err != nil {
		return engine.Member{}, engine.Settings{}, decimal.Zero, false, err
	}

	encumbered, err := HasActiveEncumbrance(ctx, s.store, memberID)
	if err != nil {
		return engine.Member{}, engine.Settings{}, decimal.Zero, false, err
	}

	return member, settings, hours, encumbered, nil
}

// HasActiveEncumbrance reports whether any encumbrance record for the
// member has no removal date.
func HasActiveEncumbrance(ctx context.Context, store Store, memberID string) (bool, error) {
	encs, err := store.ListEncumbrances(ctx, memberID)
	if err != nil {
		return false, err
	}
	for _, e := range encs {
		if e.Active() {
			return true, nil
		}
	}
	return false, nil
}
