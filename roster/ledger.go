/*
ledger.go - Work-hour ledger

PURPOSE:
  Volunteer hours flow through a small approval ledger: members submit
  entries, an officer approves or rejects them, and billing consumes one
  number - the approved total for the work year. The engine never sees
  individual entries.

INVARIANTS:
  - Only approved entries count toward the total.
  - An entry's work year is fixed by its date (March epoch), not by when
    it was submitted or approved.
  - Approval is idempotent: re-approving an approved entry is a no-op.
*/
package roster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bizagent538-commits/membership/engine"
)

// WorkHourLedger manages submission, review, and aggregation of volunteer
// hours.
type WorkHourLedger struct {
	store Store
	log   zerolog.Logger
}

// NewWorkHourLedger creates a ledger over the given store.
func NewWorkHourLedger(store Store, log zerolog.Logger) *WorkHourLedger {
	return &WorkHourLedger{store: store, log: log.With().Str("component", "workhours").Logger()}
}

// Submit records a new work-hour entry in the submitted state.
func (l *WorkHourLedger) Submit(ctx context.Context, e WorkHourEntry) error {
	if e.MemberID == "" {
		return fmt.Errorf("work-hour entry: member id is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("work-hour entry: %w", engine.ErrInvalidDate)
	}
	if !e.Hours.IsPositive() {
		return fmt.Errorf("work-hour entry: hours must be positive, got %s", e.Hours)
	}

	e.Status = EntrySubmitted
	if err := l.store.SaveWorkHourEntry(ctx, e); err != nil {
		return err
	}
	l.log.Debug().Str("member", e.MemberID).Str("date", e.Date.String()).
		Str("hours", e.Hours.String()).Msg("work hours submitted")
	return nil
}

// Review approves or rejects a submitted entry. Reviewing an entry already
// in the requested state is a no-op.
func (l *WorkHourLedger) Review(ctx context.Context, entryID, reviewer string, approve bool) error {
	e, err := l.store.GetWorkHourEntry(ctx, entryID)
	if err != nil {
		return err
	}

	want := EntryRejected
	if approve {
		want = EntryApproved
	}
	if e.Status == want {
		return nil
	}

	e.Status = want
	e.ReviewedBy = reviewer
	if err := l.store.SaveWorkHourEntry(ctx, *e); err != nil {
		return err
	}
	l.log.Info().Str("entry", entryID).Str("member", e.MemberID).
		Str("status", string(want)).Str("reviewer", reviewer).Msg("work hours reviewed")
	return nil
}

// ApprovedHours returns the member's approved total for a work year. This
// is the pre-aggregated figure the billing calculator consumes.
func (l *WorkHourLedger) ApprovedHours(ctx context.Context, memberID, workYear string) (decimal.Decimal, error) {
	entries, err := l.store.ListWorkHourEntries(ctx, memberID, workYear)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range entries {
		if e.Status == EntryApproved {
			total = total.Add(e.Hours)
		}
	}
	return total, nil
}
