package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizagent538-commits/membership/engine"
	"github.com/bizagent538-commits/membership/roster"
	"github.com/bizagent538-commits/membership/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// MEMBER TESTS
// =============================================================================

func TestStore_Member_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := roster.MemberRecord{
		ID:                       "mem-1",
		FirstName:                "Ada",
		LastName:                 "Marsh",
		Email:                    "ada@example.com",
		Tier:                     engine.TierRegular,
		Status:                   engine.StatusActive,
		DateOfBirth:              engine.NewDate(1960, time.April, 12),
		OriginalJoinDate:         engine.NewDate(1990, time.May, 1),
		AssessmentYearsCompleted: 3,
	}
	require.NoError(t, store.SaveMember(ctx, m))

	got, err := store.GetMember(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, engine.TierRegular, got.Tier)
	assert.True(t, got.DateOfBirth.Equal(m.DateOfBirth))
	assert.True(t, got.OriginalJoinDate.Equal(m.OriginalJoinDate))
	assert.Equal(t, 3, got.AssessmentYearsCompleted)
}

func TestStore_Member_UnknownDatesStayUnknown(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMember(ctx, roster.MemberRecord{
		ID: "mem-wait", Tier: engine.TierWaitlist, Status: engine.StatusActive,
	}))

	got, err := store.GetMember(ctx, "mem-wait")
	require.NoError(t, err)
	assert.True(t, got.DateOfBirth.IsZero())
	assert.True(t, got.OriginalJoinDate.IsZero())
}

func TestStore_Member_SaveIsUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := roster.MemberRecord{
		ID: "mem-1", Tier: engine.TierRegular, Status: engine.StatusActive,
		OriginalJoinDate: engine.NewDate(1990, time.May, 1),
	}
	require.NoError(t, store.SaveMember(ctx, m))

	m.Tier = engine.TierLife
	require.NoError(t, store.SaveMember(ctx, m))

	got, err := store.GetMember(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, engine.TierLife, got.Tier)

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestStore_Member_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetMember(context.Background(), "mem-missing")
	assert.ErrorIs(t, err, roster.ErrMemberNotFound)
}

// =============================================================================
// SETTINGS TESTS
// =============================================================================

func TestStore_Settings_PutAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutSetting(ctx, "regular_dues", "350"))
	require.NoError(t, store.PutSetting(ctx, "regular_dues", "400"))
	require.NoError(t, store.PutSetting(ctx, "buyout_rate", "25"))

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "400", settings["regular_dues"])
	assert.Equal(t, "25", settings["buyout_rate"])
}

// =============================================================================
// WORK-HOUR TESTS
// =============================================================================

func TestStore_WorkHours_FilterByMemberAndYear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := []roster.WorkHourEntry{
		{ID: "wh-1", MemberID: "mem-1", Date: engine.NewDate(2025, time.June, 15),
			Hours: decimal.RequireFromString("4.0"), Status: roster.EntryApproved},
		{ID: "wh-2", MemberID: "mem-1", Date: engine.NewDate(2026, time.March, 2),
			Hours: decimal.RequireFromString("2.5"), Status: roster.EntrySubmitted},
		{ID: "wh-3", MemberID: "mem-2", Date: engine.NewDate(2025, time.June, 15),
			Hours: decimal.RequireFromString("1.0"), Status: roster.EntryApproved},
	}
	for _, e := range entries {
		require.NoError(t, store.SaveWorkHourEntry(ctx, e))
	}

	// Member filter only
	list, err := store.ListWorkHourEntries(ctx, "mem-1", "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Member and work year: wh-2 is dated March 2 so it rolls into the
	// next work year
	list, err = store.ListWorkHourEntries(ctx, "mem-1", "2025-2026")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "wh-1", list[0].ID)
	assert.True(t, list[0].Hours.Equal(decimal.RequireFromString("4.0")))
	assert.Equal(t, roster.EntryApproved, list[0].Status)

	// No filters returns everything
	list, err = store.ListWorkHourEntries(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestStore_WorkHours_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetWorkHourEntry(context.Background(), "wh-missing")
	assert.ErrorIs(t, err, roster.ErrEntryNotFound)
}

// =============================================================================
// ENCUMBRANCE TESTS
// =============================================================================

func TestStore_Encumbrance_RemovalRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := roster.Encumbrance{
		ID: "enc-1", MemberID: "mem-1",
		Reason: "conduct review", PlacedOn: engine.NewDate(2025, time.November, 2),
	}
	require.NoError(t, store.SaveEncumbrance(ctx, e))

	list, err := store.ListEncumbrances(ctx, "mem-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Active())

	removed := engine.NewDate(2026, time.January, 5)
	e.RemovedOn = &removed
	require.NoError(t, store.SaveEncumbrance(ctx, e))

	list, err = store.ListEncumbrances(ctx, "mem-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Active())
	assert.True(t, list[0].RemovedOn.Equal(removed))
}

// =============================================================================
// BILLING RECORD TESTS
// =============================================================================

func TestStore_BillingRecord_ResultSurvivesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result := engine.BillingResult{
		Dues:     decimal.RequireFromString("300"),
		Buyout:   decimal.RequireFromString("120"),
		Subtotal: decimal.RequireFromString("420"),
		Tax:      decimal.RequireFromString("42"),
		Total:    decimal.RequireFromString("462"),
	}
	require.NoError(t, store.SaveBillingRecord(ctx, roster.BillingRecord{
		ID: "bill-mem-1-2025-2026", MemberID: "mem-1", FiscalYear: "2025-2026",
		Result: result, GeneratedAt: time.Now(),
	}))

	records, err := store.ListBillingRecords(ctx, "2025-2026")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Result.Total.Equal(result.Total), "total %s", records[0].Result.Total)
	assert.True(t, records[0].Result.Tax.Equal(result.Tax))

	// Filtering by another fiscal year excludes it
	records, err = store.ListBillingRecords(ctx, "2026-2027")
	require.NoError(t, err)
	assert.Empty(t, records)
}

// =============================================================================
// ELIGIBILITY LOG TESTS
// =============================================================================

func TestStore_EligibilityLog_AppendAndFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendEligibilityLog(ctx, roster.EligibilityLogEntry{
		ID: "elig-1", MemberID: "mem-1", Rule: engine.RuleLongevity,
		Reason: "35 consecutive years (30+ required)", Converted: true,
		CheckedOn: engine.NewDate(2026, time.January, 10),
	}))
	require.NoError(t, store.AppendEligibilityLog(ctx, roster.EligibilityLogEntry{
		ID: "elig-2", MemberID: "mem-2", Rule: engine.RuleStandard,
		Reason: "Age 62 (62+ required), 20 consecutive years (20+ required)", Converted: true,
		CheckedOn: engine.NewDate(2026, time.January, 10),
	}))

	entries, err := store.ListEligibilityLog(ctx, "mem-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, engine.RuleLongevity, entries[0].Rule)
	assert.True(t, entries[0].Converted)

	all, err := store.ListEligibilityLog(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// =============================================================================
// WAITLIST TESTS
// =============================================================================

func TestStore_Waitlist_OrderedByPositionAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWaitlistEntry(ctx, roster.WaitlistEntry{
		ID: "wl-b", FirstName: "Ben", AppliedOn: engine.NewDate(2025, time.August, 1), Position: 2,
	}))
	require.NoError(t, store.SaveWaitlistEntry(ctx, roster.WaitlistEntry{
		ID: "wl-a", FirstName: "Amy", AppliedOn: engine.NewDate(2025, time.July, 1), Position: 1,
	}))

	list, err := store.ListWaitlist(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "wl-a", list[0].ID)
	assert.Equal(t, "wl-b", list[1].ID)

	require.NoError(t, store.DeleteWaitlistEntry(ctx, "wl-a"))
	assert.ErrorIs(t, store.DeleteWaitlistEntry(ctx, "wl-a"), roster.ErrWaitlistNotFound)

	list, err = store.ListWaitlist(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
