package engine_test

import (
	"testing"
	"time"

	"github.com/bizagent538-commits/membership/engine"
)

// =============================================================================
// RULE PRECEDENCE
// =============================================================================

func TestCheckLifeEligibility_LongevityTakesPrecedence(t *testing.T) {
	// Scenario: joined 1990-01-01, DOB 1955-01-01, today 2025-06-01
	// => age 70, 35 consecutive years. Both Longevity and Legacy would
	// match; Longevity is checked first and wins.
	today := date(2025, time.June, 1)
	m := engine.Member{
		ID:               "m-1",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		DateOfBirth:      date(1955, time.January, 1),
		OriginalJoinDate: date(1990, time.January, 1),
	}

	got := engine.CheckLifeEligibility(m, false, today)
	if !got.Eligible {
		t.Fatalf("expected eligible, got %+v", got)
	}
	if got.Rule != engine.RuleLongevity {
		t.Errorf("rule = %s, want Longevity", got.Rule)
	}
	if got.Reason != "35 consecutive years (30+ required)" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestCheckLifeEligibility_StandardRequiresTwentyYears(t *testing.T) {
	// Scenario: joined 2015-07-01 (after cutoff), DOB 1963-07-01,
	// today 2025-07-02 => age 62, 10 years. Standard needs 20.
	today := date(2025, time.July, 2)
	m := engine.Member{
		ID:               "m-2",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		DateOfBirth:      date(1963, time.July, 1),
		OriginalJoinDate: date(2015, time.July, 1),
	}

	got := engine.CheckLifeEligibility(m, false, today)
	if got.Eligible {
		t.Fatalf("expected not eligible, got %+v", got)
	}
	if got.Reason != "10 more years of membership needed" {
		t.Errorf("reason = %q, want \"10 more years of membership needed\"", got.Reason)
	}
}

func TestCheckLifeEligibility_LegacyRule(t *testing.T) {
	// GIVEN: Joined 2005-06-15 (before cutoff), age 63, 20 years service
	// THEN: Legacy matches (10-year requirement)
	today := date(2025, time.August, 1)
	m := engine.Member{
		ID:               "m-3",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		DateOfBirth:      date(1962, time.March, 10),
		OriginalJoinDate: date(2005, time.June, 15),
	}

	got := engine.CheckLifeEligibility(m, false, today)
	if !got.Eligible || got.Rule != engine.RuleLegacy {
		t.Errorf("expected Legacy eligibility, got %+v", got)
	}
}

func TestCheckLifeEligibility_CutoffBoundary(t *testing.T) {
	// Joins strictly before 2011-07-01 use Legacy (10 years); joins on the
	// cutoff itself use Standard (20 years).
	today := date(2026, time.August, 1)
	base := engine.Member{
		ID:          "m-4",
		Tier:        engine.TierRegular,
		Status:      engine.StatusActive,
		DateOfBirth: date(1960, time.January, 1), // age 66
	}

	before := base
	before.OriginalJoinDate = date(2011, time.June, 30) // 15 years
	if got := engine.CheckLifeEligibility(before, false, today); !got.Eligible || got.Rule != engine.RuleLegacy {
		t.Errorf("joined 2011-06-30: got %+v, want Legacy", got)
	}

	onCutoff := base
	onCutoff.OriginalJoinDate = date(2011, time.July, 1) // 15 years, needs 20
	if got := engine.CheckLifeEligibility(onCutoff, false, today); got.Eligible {
		t.Errorf("joined on cutoff with 15 years: got %+v, want not eligible", got)
	}
}

// =============================================================================
// DISQUALIFIERS
// =============================================================================

func TestCheckLifeEligibility_EncumbranceDominates(t *testing.T) {
	// GIVEN: Member eligible under every rule
	// WHEN: An active encumbrance exists
	// THEN: Not eligible, no exceptions
	today := date(2025, time.June, 1)
	m := engine.Member{
		ID:               "m-5",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		DateOfBirth:      date(1950, time.January, 1),
		OriginalJoinDate: date(1980, time.January, 1),
	}

	got := engine.CheckLifeEligibility(m, true, today)
	if got.Eligible {
		t.Fatalf("encumbered member reported eligible: %+v", got)
	}
	if got.Reason != "Has active Article XII encumbrance" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestCheckLifeEligibility_AlreadyLifeAndInactive(t *testing.T) {
	today := date(2025, time.June, 1)
	m := engine.Member{
		ID:               "m-6",
		Tier:             engine.TierLife,
		Status:           engine.StatusActive,
		OriginalJoinDate: date(1980, time.January, 1),
	}

	if got := engine.CheckLifeEligibility(m, false, today); got.Eligible || got.Reason != "Already Life member" {
		t.Errorf("Life member: got %+v", got)
	}

	m.Tier = engine.TierRegular
	m.Status = engine.StatusResigned
	if got := engine.CheckLifeEligibility(m, false, today); got.Eligible || got.Reason != "Not an active member" {
		t.Errorf("resigned member: got %+v", got)
	}
}

// =============================================================================
// MONOTONICITY AND UNKNOWN AGE
// =============================================================================

func TestCheckLifeEligibility_LongevityMonotone(t *testing.T) {
	// Once the 30-year mark is reached, more years never flip it back.
	m := engine.Member{
		ID:               "m-7",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		OriginalJoinDate: date(1990, time.June, 1),
	}

	for year := 2020; year <= 2045; year++ {
		today := date(year, time.July, 1)
		got := engine.CheckLifeEligibility(m, false, today)
		years := engine.ConsecutiveYears(m.OriginalJoinDate, today)
		if years >= 30 && !got.Eligible {
			t.Errorf("year %d (%d years): expected eligible", year, years)
		}
	}
}

func TestCheckLifeEligibility_UnknownAgeFallsThroughToLongevityGap(t *testing.T) {
	// GIVEN: No date of birth on file, 12 years of service
	// THEN: Age rules are skipped; gap reported against the 30-year mark
	today := date(2025, time.June, 1)
	m := engine.Member{
		ID:               "m-8",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		OriginalJoinDate: date(2013, time.March, 1),
	}

	got := engine.CheckLifeEligibility(m, false, today)
	if got.Eligible {
		t.Fatalf("expected not eligible, got %+v", got)
	}
	if got.Reason != "18 years until longevity eligible" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestCheckLifeEligibility_GapPicksServiceMetFirst(t *testing.T) {
	// GIVEN: 22 years of service, age 58 - service requirement met
	// THEN: The reported gap is years until age 62
	today := date(2025, time.June, 1)
	m := engine.Member{
		ID:               "m-9",
		Tier:             engine.TierRegular,
		Status:           engine.StatusActive,
		DateOfBirth:      date(1967, time.January, 1),
		OriginalJoinDate: date(2003, time.January, 1),
	}

	got := engine.CheckLifeEligibility(m, false, today)
	if got.Reason != "4 years until age eligible" {
		t.Errorf("reason = %q, want \"4 years until age eligible\"", got.Reason)
	}
}
