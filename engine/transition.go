/*
transition.go - Mid-year Life-eligibility transitions

PURPOSE:
  Finds the exact date, if any, inside the current billing year
  (Mar 1 - Feb 28/29) on which a member will first cross a Life
  threshold. billing.go uses that date to reverse-prorate the final
  bill for the year the member leaves the paying pool.

  This check is speculative ("will become eligible on this date"); the
  confirmed check is eligibility.go. A member one year short of the
  longevity mark crosses at their 30th join anniversary; a member aged
  61 with sufficient banked service crosses at their 62nd birthday.
*/
package engine

// LifeEligibilityDate returns the date within the current billing year on
// which the member first satisfies a Life rule, and whether such a date
// exists. Encumbered, already-Life, and inactive members never transition.
func LifeEligibilityDate(m Member, hasActiveEncumbrance bool, today Date) (Date, bool) {
	if hasActiveEncumbrance || m.Tier == TierLife || m.Status != StatusActive {
		return Date{}, false
	}
	if m.OriginalJoinDate.IsZero() {
		return Date{}, false
	}

	billingYear := BillingYearPeriod(today)
	years := ConsecutiveYears(m.OriginalJoinDate, today)

	// Longevity: the 30th join anniversary falls in this billing year.
	if years == longevityYears-1 {
		anniversary := m.OriginalJoinDate.AddYears(longevityYears)
		if billingYear.Contains(anniversary) {
			return anniversary, true
		}
	}

	// Age-based rules: the 62nd birthday falls in this billing year and
	// the service requirement is already banked.
	age, ageKnown := Age(m.DateOfBirth, today)
	if !ageKnown || age != eligibilityAge-1 {
		return Date{}, false
	}
	birthday62 := m.DateOfBirth.AddYears(eligibilityAge)
	if !billingYear.Contains(birthday62) {
		return Date{}, false
	}

	if m.OriginalJoinDate.Before(LifeCutoffDate) {
		if years >= legacyYears {
			return birthday62, true
		}
		return Date{}, false
	}
	if years >= standardYears {
		return birthday62, true
	}
	return Date{}, false
}
