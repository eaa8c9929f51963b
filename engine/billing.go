/*
billing.go - Annual dues calculation

PURPOSE:
  Computes one member's bill for the current billing year: dues
  (prorated where the bylaws call for it), the new-member assessment,
  the work-hour shortfall buyout, and tax.

ALGORITHM (Regular members):
  1. Joined during the current billing year? Prorate dues and required
     hours by the join-date quarter (Q1 100%, Q2 75%, Q3 50%, Q4 25%).
  2. Otherwise, becoming Life-eligible during this billing year? Apply
     reverse proration by the eligibility-date quarter (Q1 0%, Q2 25%,
     Q3 50%, Q4 75%) - the member pays only for the part of the year
     before they leave the paying pool.
  3. Otherwise full-year dues and hours.
  4. Assessment while AssessmentYearsCompleted < 5.
  5. Buyout = max(0, required - completed hours) * buyout rate.
  6. Subtotal, tax, total - each currency value rounded to cents as it
     is produced, hours to tenths.

  Life and Honorary members always receive an all-zero bill; Absentee
  members pay a flat rate with no hours and no assessment.

PURITY:
  No I/O and no clock. Persisting the result (membership-year records,
  payment ledger) belongs to the roster layer.
*/
package engine

import "github.com/shopspring/decimal"

// ComputeBilling computes the member's bill for the billing year
// containing today. workHoursCompleted is the pre-aggregated total of
// approved hours for the current work year.
func ComputeBilling(m Member, s Settings, workHoursCompleted decimal.Decimal, hasActiveEncumbrance bool, today Date) BillingResult {
	result := ZeroBilling()

	// Life and Honorary pay nothing.
	if m.Tier == TierLife || m.Tier == TierHonorary {
		return result
	}

	// Absentee pays a flat rate: no work hours, no assessment, no proration.
	if m.Tier == TierAbsentee {
		result.Dues = s.AbsenteeDues.Round(2)
		result.Subtotal = result.Dues
		result.Tax = result.Subtotal.Mul(s.CabaretTaxRate).Round(2)
		result.Total = result.Subtotal.Add(result.Tax).Round(2)
		return result
	}

	// Regular member.
	switch {
	case SameBillingYear(m.OriginalJoinDate, today):
		// Joined this billing year: prorate by join quarter.
		mult := ProrationMultiplier(BillingQuarter(m.OriginalJoinDate))
		result.Dues = s.RegularDues.Mul(mult).Round(2)
		result.WorkHoursRequired = s.WorkHoursRequired.Mul(mult).Round(1)

	default:
		if eligDate, ok := LifeEligibilityDate(m, hasActiveEncumbrance, today); ok {
			// Leaving the paying pool mid-year: reverse proration by the
			// eligibility-date quarter.
			mult := ReverseProrationMultiplier(BillingQuarter(eligDate))
			result.Dues = s.RegularDues.Mul(mult).Round(2)
			result.WorkHoursRequired = s.WorkHoursRequired.Mul(mult).Round(1)
		} else {
			result.Dues = s.RegularDues.Round(2)
			result.WorkHoursRequired = s.WorkHoursRequired.Round(1)
		}
	}

	// New-member assessment for the first 5 years.
	if m.AssessmentYearsCompleted < 5 {
		result.Assessment = s.AssessmentAmount.Round(2)
	}

	// Work-hour shortfall buyout. Never negative.
	result.WorkHoursCompleted = workHoursCompleted.Round(1)
	result.WorkHoursShort = result.WorkHoursRequired.Sub(result.WorkHoursCompleted)
	if result.WorkHoursShort.IsNegative() {
		result.WorkHoursShort = decimal.Zero
	}
	result.Buyout = result.WorkHoursShort.Mul(s.BuyoutRate).Round(2)

	result.Subtotal = result.Dues.Add(result.Assessment).Add(result.Buyout)
	result.Tax = result.Subtotal.Mul(s.CabaretTaxRate).Round(2)
	result.Total = result.Subtotal.Add(result.Tax).Round(2)

	return result
}
