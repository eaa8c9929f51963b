package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
	"github.com/bizagent538-commits/membership/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestLedger(t *testing.T) (*roster.WorkHourLedger, *memory.Store) {
	t.Helper()
	store := memory.New()
	return roster.NewWorkHourLedger(store, zerolog.Nop()), store
}

func hours(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedMember(t *testing.T, store roster.Store, m roster.MemberRecord) {
	t.Helper()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	require.NoError(t, store.SaveMember(context.Background(), m))
}

func activeRegular(id string, joined engine.Date) roster.MemberRecord {
	return roster.MemberRecord{
		ID:               id,
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		OriginalJoinDate: joined,
	}
}

// =============================================================================
// SUBMISSION TESTS
// =============================================================================

func TestLedger_Submit_ForcesSubmittedState(t *testing.T) {
	// GIVEN: An entry claiming to be pre-approved
	// WHEN: It is submitted
	// THEN: It lands in submitted state regardless

	ledger, store := newTestLedger(t)
	ctx := context.Background()

	entry := roster.WorkHourEntry{
		ID:       "wh-1",
		MemberID: "mem-1",
		Date:     engine.NewDate(2025, time.June, 15),
		Hours:    hours("4.0"),
		Status:   roster.EntryApproved,
	}
	require.NoError(t, ledger.Submit(ctx, entry))

	saved, err := store.GetWorkHourEntry(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, roster.EntrySubmitted, saved.Status)
}

func TestLedger_Submit_RejectsInvalidEntries(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()
	valid := roster.WorkHourEntry{
		ID:       "wh-1",
		MemberID: "mem-1",
		Date:     engine.NewDate(2025, time.June, 15),
		Hours:    hours("2.5"),
	}

	noMember := valid
	noMember.MemberID = ""
	assert.Error(t, ledger.Submit(ctx, noMember), "missing member id")

	noDate := valid
	noDate.Date = engine.Date{}
	assert.ErrorIs(t, ledger.Submit(ctx, noDate), engine.ErrInvalidDate)

	zeroHours := valid
	zeroHours.Hours = decimal.Zero
	assert.Error(t, ledger.Submit(ctx, zeroHours), "zero hours")

	negative := valid
	negative.Hours = hours("-1")
	assert.Error(t, ledger.Submit(ctx, negative), "negative hours")
}

// =============================================================================
// REVIEW TESTS
// =============================================================================

func TestLedger_Review_ApproveAndReject(t *testing.T) {
	ledger, store := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Submit(ctx, roster.WorkHourEntry{
		ID: "wh-1", MemberID: "mem-1",
		Date: engine.NewDate(2025, time.June, 15), Hours: hours("4.0"),
	}))

	require.NoError(t, ledger.Review(ctx, "wh-1", "officer-a", true))
	saved, err := store.GetWorkHourEntry(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, roster.EntryApproved, saved.Status)
	assert.Equal(t, "officer-a", saved.ReviewedBy)

	// Re-approving is a no-op, reviewer unchanged
	require.NoError(t, ledger.Review(ctx, "wh-1", "officer-b", true))
	saved, err = store.GetWorkHourEntry(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, "officer-a", saved.ReviewedBy)

	// A rejection flips the state
	require.NoError(t, ledger.Review(ctx, "wh-1", "officer-b", false))
	saved, err = store.GetWorkHourEntry(ctx, "wh-1")
	require.NoError(t, err)
	assert.Equal(t, roster.EntryRejected, saved.Status)
	assert.Equal(t, "officer-b", saved.ReviewedBy)
}

func TestLedger_Review_UnknownEntry(t *testing.T) {
	ledger, _ := newTestLedger(t)
	err := ledger.Review(context.Background(), "wh-missing", "officer-a", true)
	assert.ErrorIs(t, err, roster.ErrEntryNotFound)
}

// =============================================================================
// AGGREGATION TESTS
// =============================================================================

func TestLedger_ApprovedHours_OnlyApprovedEntriesCount(t *testing.T) {
	// GIVEN: Entries in all three states within one work year
	// WHEN: The approved total is computed
	// THEN: Submitted and rejected entries contribute nothing

	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	submit := func(id string, h string) {
		require.NoError(t, ledger.Submit(ctx, roster.WorkHourEntry{
			ID: id, MemberID: "mem-1",
			Date: engine.NewDate(2025, time.June, 15), Hours: hours(h),
		}))
	}
	submit("wh-1", "4.0")
	submit("wh-2", "2.5")
	submit("wh-3", "8.0")

	require.NoError(t, ledger.Review(ctx, "wh-1", "officer-a", true))
	require.NoError(t, ledger.Review(ctx, "wh-2", "officer-a", true))
	require.NoError(t, ledger.Review(ctx, "wh-3", "officer-a", false))

	total, err := ledger.ApprovedHours(ctx, "mem-1", "2025-2026")
	require.NoError(t, err)
	assert.True(t, total.Equal(hours("6.5")), "got %s", total)
}

func TestLedger_ApprovedHours_SplitsOnWorkYearBoundary(t *testing.T) {
	// The work year rolls over on March 1. Hours on February 28 belong
	// to the ending year; hours on March 1 belong to the next one.

	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	entries := []roster.WorkHourEntry{
		{ID: "wh-1", MemberID: "mem-1", Date: engine.NewDate(2026, time.February, 28), Hours: hours("3.0")},
		{ID: "wh-2", MemberID: "mem-1", Date: engine.NewDate(2026, time.March, 1), Hours: hours("5.0")},
	}
	for _, e := range entries {
		require.NoError(t, ledger.Submit(ctx, e))
		require.NoError(t, ledger.Review(ctx, e.ID, "officer-a", true))
	}

	prior, err := ledger.ApprovedHours(ctx, "mem-1", "2025-2026")
	require.NoError(t, err)
	assert.True(t, prior.Equal(hours("3.0")), "got %s", prior)

	next, err := ledger.ApprovedHours(ctx, "mem-1", "2026-2027")
	require.NoError(t, err)
	assert.True(t, next.Equal(hours("5.0")), "got %s", next)
}

func TestLedger_ApprovedHours_NoEntries(t *testing.T) {
	ledger, _ := newTestLedger(t)
	total, err := ledger.ApprovedHours(context.Background(), "mem-1", "2025-2026")
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
