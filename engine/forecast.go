/*
forecast.go - Near-eligibility forecast for planning reports

PURPOSE:
  The membership committee's planning report lists members within two
  years of any Life rule. This is a read-only reporting view: it reuses
  the threshold math from eligibility.go with a wider window and
  produces a human-readable status line instead of a date. It is not on
  the billing-critical path (transition.go is).

WINDOWS:
  near longevity  28-29 consecutive years
  near standard   age 60-61 with 20+ years banked
  near legacy     age 60-61 with 10+ years banked, joined before the
                  2011-07-01 cutoff
*/
package engine

import "fmt"

// Forecast describes a member's proximity to Life eligibility.
type Forecast struct {
	Within           bool // within two years of some rule
	Age              int  // 0 when unknown
	AgeKnown         bool
	ConsecutiveYears int
	Message          string
}

// NearLifeEligibility produces the two-year forecast for an active,
// non-Life, non-Honorary member. Members who are already eligible or
// encumbered report Within=false; the committee sees them on other lists.
func NearLifeEligibility(m Member, hasActiveEncumbrance bool, today Date) Forecast {
	age, ageKnown := Age(m.DateOfBirth, today)
	years := ConsecutiveYears(m.OriginalJoinDate, today)
	f := Forecast{Age: age, AgeKnown: ageKnown, ConsecutiveYears: years}

	if m.Status != StatusActive || m.Tier == TierLife || m.Tier == TierHonorary {
		return f
	}
	if CheckLifeEligibility(m, hasActiveEncumbrance, today).Eligible {
		return f
	}

	nearLongevity := years >= longevityYears-2 && years < longevityYears
	nearAge := ageKnown && age >= eligibilityAge-2 && age < eligibilityAge
	nearStandard := nearAge && years >= standardYears
	nearLegacy := nearAge && years >= legacyYears && m.OriginalJoinDate.Before(LifeCutoffDate)

	yearsToLongevity := longevityYears - years
	yearsToAge := eligibilityAge - age
	yearsToService := 0
	if years < standardYears {
		yearsToService = standardYears - years
	}

	switch {
	case nearLongevity:
		f.Within = true
		f.Message = fmt.Sprintf("%d years until longevity eligible", yearsToLongevity)

	case nearStandard:
		f.Within = true
		switch {
		case yearsToAge <= 0:
			f.Message = fmt.Sprintf("%d more years of membership needed", yearsToService)
		case yearsToService == 0:
			f.Message = fmt.Sprintf("%d years until age eligible", yearsToAge)
		case yearsToAge <= yearsToService:
			f.Message = fmt.Sprintf("%d years until age eligible", yearsToAge)
		default:
			f.Message = fmt.Sprintf("%d more years of membership needed", yearsToService)
		}

	case nearLegacy:
		f.Within = true
		if age >= eligibilityAge {
			f.Message = fmt.Sprintf("%d more years of membership needed (legacy rule)", legacyYears-years)
		} else {
			f.Message = fmt.Sprintf("%d years until age eligible (legacy rule)", yearsToAge)
		}
	}

	return f
}
