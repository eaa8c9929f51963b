/*
types.go - Member snapshot and computed results

PURPOSE:
  Defines the values crossing the engine boundary: the per-calculation
  Member snapshot, the BillingResult produced by billing.go, and the
  EligibilityResult produced by eligibility.go.

DESIGN PRINCIPLES:
  1. Explicit typed records, validated at the boundary - no duck-typed
     rows reach the rules.
  2. Results are derived views with no persistence identity; the caller
     decides whether to store them.
  3. Currency rounds to cents at each accumulation step; hours round to
     tenths.
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// MEMBER - Immutable per-calculation snapshot
// =============================================================================

// Tier is a membership tier. Waitlist is a pre-member state: waitlisted
// people are tracked by the roster but never billed or eligibility-checked.
type Tier string

const (
	TierRegular  Tier = "Regular"
	TierAbsentee Tier = "Absentee"
	TierLife     Tier = "Life"
	TierHonorary Tier = "Honorary"
	TierWaitlist Tier = "Waitlist"
)

// Status is a membership status. Only Active members are billed or
// eligibility-checked.
type Status string

const (
	StatusActive   Status = "Active"
	StatusDeceased Status = "Deceased"
	StatusResigned Status = "Resigned"
	StatusExpelled Status = "Expelled"
)

// Member is the snapshot the engine consumes. DateOfBirth may be zero
// (unknown); age-dependent rules then report "unknown" rather than
// computing a negative.
type Member struct {
	ID               string
	Tier             Tier
	Status           Status
	DateOfBirth      Date
	OriginalJoinDate Date

	// Completed years of the new-member assessment, clamped at 5.
	// At 5 the assessment is no longer owed.
	AssessmentYearsCompleted int
}

// Validate checks the structural requirements the engine assumes. It does
// not police tier/status spelling beyond the known sets; unknown values are
// an import-layer data-quality problem.
func (m Member) Validate() error {
	if m.ID == "" {
		return &MemberValidationError{MemberID: m.ID, Field: "id", Detail: "is required"}
	}
	if m.OriginalJoinDate.IsZero() && m.Tier != TierWaitlist {
		return &MemberValidationError{MemberID: m.ID, Field: "original_join_date", Detail: "is required"}
	}
	if m.AssessmentYearsCompleted < 0 {
		return &MemberValidationError{MemberID: m.ID, Field: "assessment_years_completed", Detail: "is negative"}
	}
	return nil
}

// Billable reports whether this member participates in billing at all.
func (m Member) Billable() bool {
	return m.Status == StatusActive && m.Tier != TierWaitlist
}

// =============================================================================
// BILLING RESULT
// =============================================================================

// BillingResult is one member's computed bill for the current year.
// Invariants: Subtotal = Dues + Assessment + Buyout,
// Total = round(Subtotal + Tax, 2), WorkHoursShort >= 0.
type BillingResult struct {
	Dues               decimal.Decimal
	Assessment         decimal.Decimal
	WorkHoursRequired  decimal.Decimal
	WorkHoursCompleted decimal.Decimal
	WorkHoursShort     decimal.Decimal
	Buyout             decimal.Decimal
	Subtotal           decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
}

// ZeroBilling returns an all-zero result (Life and Honorary members).
func ZeroBilling() BillingResult {
	z := decimal.Zero
	return BillingResult{
		Dues: z, Assessment: z,
		WorkHoursRequired: z, WorkHoursCompleted: z, WorkHoursShort: z,
		Buyout: z, Subtotal: z, Tax: z, Total: z,
	}
}

// =============================================================================
// ELIGIBILITY RESULT
// =============================================================================

// Rule names the Life-eligibility rule that matched.
type Rule string

const (
	RuleLongevity Rule = "Longevity" // 30+ consecutive years, any age
	RuleLegacy    Rule = "Legacy"    // joined before 2011-07-01, 62+, 10+ years
	RuleStandard  Rule = "Standard"  // joined on/after 2011-07-01, 62+, 20+ years
	RuleNone      Rule = "None"
)

// EligibilityResult reports whether a member qualifies for Life membership
// and why (or the single closest gap when they do not).
type EligibilityResult struct {
	Eligible bool
	Rule     Rule
	Reason   string
}
