/*
eligibility.go - Life-membership eligibility rules

PURPOSE:
  Determines whether a member qualifies for Life membership today, and
  when they do not, names the single closest numeric gap.

RULES (first match wins):
  1. Active Article XII encumbrance blocks conversion outright.
  2. Already Life: nothing to do.
  3. Not Active: not eligible.
  4. Longevity:  30+ consecutive years, any age.        (adopted Jan 2023)
  5. Legacy:     joined before 2011-07-01, age 62+, 10+ years.
  6. Standard:   joined 2011-07-01 or later, age 62+, 20+ years.

CLOSEST GAP (when nothing matched):
  service met, age short   -> years until age 62
  age met, service short   -> years of service still needed
  otherwise                -> years until the 30-year longevity mark
  Only one gap is reported even when several paths are open.

  An unknown date of birth fails every age check and falls through to
  the longevity gap; it never produces a negative age.
*/
package engine

import "fmt"

// LifeCutoffDate separates the Legacy rule (joins strictly before it) from
// the Standard rule (joins on or after it).
var LifeCutoffDate = NewDate(2011, 7, 1)

const (
	longevityYears = 30
	legacyYears    = 10
	standardYears  = 20
	eligibilityAge = 62
)

// CheckLifeEligibility evaluates the Life-membership rules for a member as
// of today. The encumbrance flag is pre-computed by the caller: true iff
// any encumbrance record for the member has no removal date.
func CheckLifeEligibility(m Member, hasActiveEncumbrance bool, today Date) EligibilityResult {
	if hasActiveEncumbrance {
		return EligibilityResult{Eligible: false, Rule: RuleNone, Reason: "Has active Article XII encumbrance"}
	}
	if m.Tier == TierLife {
		return EligibilityResult{Eligible: false, Rule: RuleNone, Reason: "Already Life member"}
	}
	if m.Status != StatusActive {
		return EligibilityResult{Eligible: false, Rule: RuleNone, Reason: "Not an active member"}
	}

	age, ageKnown := Age(m.DateOfBirth, today)
	years := ConsecutiveYears(m.OriginalJoinDate, today)
	joinedBeforeCutoff := m.OriginalJoinDate.Before(LifeCutoffDate)

	if years >= longevityYears {
		return EligibilityResult{
			Eligible: true,
			Rule:     RuleLongevity,
			Reason:   fmt.Sprintf("%d consecutive years (30+ required)", years),
		}
	}

	if joinedBeforeCutoff && ageKnown && age >= eligibilityAge && years >= legacyYears {
		return EligibilityResult{
			Eligible: true,
			Rule:     RuleLegacy,
			Reason:   fmt.Sprintf("Age %d (62+ required), %d consecutive years (10+ required), joined before July 2011", age, years),
		}
	}

	if !joinedBeforeCutoff && ageKnown && age >= eligibilityAge && years >= standardYears {
		return EligibilityResult{
			Eligible: true,
			Rule:     RuleStandard,
			Reason:   fmt.Sprintf("Age %d (62+ required), %d consecutive years (20+ required)", age, years),
		}
	}

	return EligibilityResult{Eligible: false, Rule: RuleNone, Reason: closestGap(age, ageKnown, years)}
}

// closestGap names the nearest path to eligibility, checked in the same
// order the membership committee reads them: service already met, then age
// already met, then the longevity fallback.
func closestGap(age int, ageKnown bool, years int) string {
	switch {
	case ageKnown && years >= standardYears && age < eligibilityAge:
		return fmt.Sprintf("%d years until age eligible", eligibilityAge-age)
	case ageKnown && age >= eligibilityAge && years < standardYears:
		return fmt.Sprintf("%d more years of membership needed", standardYears-years)
	case years < longevityYears:
		return fmt.Sprintf("%d years until longevity eligible", longevityYears-years)
	default:
		return "Does not meet criteria"
	}
}
