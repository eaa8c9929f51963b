/*
calendar.go - Club administrative period resolution

PURPOSE:
  The club runs three overlapping calendars, each with its own epoch:

    Fiscal (dues) year:   Jul 1 - Jun 30   dues billing
    Work-hour year:       Mar 1 - Feb 28/29 volunteer-hour obligation
    Billing year:         Mar 1 epoch      quarter-based dues proration

  This file converts a calendar date into each of these periods, plus
  the two administrative windows hung off them: the spring collection
  period (Apr 1 through the first Wednesday of June) and the work-hour
  review window (work-year end through Mar 30).

QUARTERS AND PRORATION:
  Billing quarters are keyed to the MARCH epoch, not the fiscal year:
    Q1 Mar-May   joins pay 100% of dues
    Q2 Jun-Aug   75%
    Q3 Sep-Nov   50%
    Q4 Dec-Feb   25%
  Reverse proration (for members leaving the paying pool mid-year when
  they become Life-eligible) mirrors the scheme: Q1 0%, Q2 25%, Q3 50%,
  Q4 75%.

SEE ALSO:
  - billing.go: Applies the proration multipliers
  - transition.go: Uses BillingYearPeriod for the mid-year window check
*/
package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is an inclusive date range.
type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// YEAR RESOLUTION - Fiscal, work-hour, and billing years
// =============================================================================

const (
	fiscalYearStartMonth = time.July  // dues year epoch
	workYearStartMonth   = time.March // work-hour + billing year epoch
)

// FiscalYear returns the "YYYY-YYYY" dues year containing the date
// (July 1 - June 30).
func FiscalYear(d Date) string {
	return yearPair(d, fiscalYearStartMonth)
}

// WorkYear returns the "YYYY-YYYY" work-hour year containing the date
// (March 1 - February 28/29).
func WorkYear(d Date) string {
	return yearPair(d, workYearStartMonth)
}

func yearPair(d Date, startMonth time.Month) string {
	year := d.Year()
	if d.Month() < startMonth {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

// BillingYearStart returns the calendar year in which the billing year
// containing the date began. The billing year shares the work-hour year's
// March 1 epoch.
func BillingYearStart(d Date) int {
	if d.Month() >= workYearStartMonth {
		return d.Year()
	}
	return d.Year() - 1
}

// BillingYearPeriod returns the billing year containing the date:
// March 1 through the day before the next March 1 (February 28, or 29 in
// a leap year).
func BillingYearPeriod(d Date) Period {
	start := NewDate(BillingYearStart(d), workYearStartMonth, 1)
	return Period{Start: start, End: start.AddYears(1).AddDays(-1)}
}

// SameBillingYear reports whether two dates fall in the same billing year.
func SameBillingYear(a, b Date) bool {
	return BillingYearStart(a) == BillingYearStart(b)
}

// =============================================================================
// BILLING QUARTERS - Proration multipliers
// =============================================================================

// BillingQuarter returns the quarter (1-4) of the billing year containing
// the date. Q1 = Mar-May, Q2 = Jun-Aug, Q3 = Sep-Nov, Q4 = Dec-Feb.
func BillingQuarter(d Date) int {
	switch m := d.Month(); {
	case m >= time.March && m <= time.May:
		return 1
	case m >= time.June && m <= time.August:
		return 2
	case m >= time.September && m <= time.November:
		return 3
	default:
		return 4
	}
}

var (
	prorationByQuarter = map[int]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.RequireFromString("0.75"),
		3: decimal.RequireFromString("0.5"),
		4: decimal.RequireFromString("0.25"),
	}
	reverseProrationByQuarter = map[int]decimal.Decimal{
		1: decimal.Zero,
		2: decimal.RequireFromString("0.25"),
		3: decimal.RequireFromString("0.5"),
		4: decimal.RequireFromString("0.75"),
	}
)

// ProrationMultiplier returns the dues multiplier for a member who joins
// in the given quarter: later joins owe less.
func ProrationMultiplier(quarter int) decimal.Decimal {
	if m, ok := prorationByQuarter[quarter]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// ReverseProrationMultiplier returns the dues multiplier for a member who
// becomes Life-eligible in the given quarter: they owe only the portion of
// the year before the eligibility date. A Q1 eligibility date means the
// member is effectively Life from the start of the year and owes nothing.
func ReverseProrationMultiplier(quarter int) decimal.Decimal {
	if m, ok := reverseProrationByQuarter[quarter]; ok {
		return m
	}
	return decimal.Zero
}

// =============================================================================
// COLLECTION PERIOD - Apr 1 through the first Wednesday of June
// =============================================================================

// PeriodStatus labels where today falls relative to an administrative window.
type PeriodStatus string

const (
	StatusPre      PeriodStatus = "pre"      // window has not opened yet
	StatusOpen     PeriodStatus = "open"     // window (or year) is running
	StatusReview   PeriodStatus = "review"   // work-hour catch-up window
	StatusClosed   PeriodStatus = "closed"   // collection window has passed
	StatusComplete PeriodStatus = "complete" // work-hour year closed out
)

// CollectionPeriod describes the annual dues-collection window.
type CollectionPeriod struct {
	Status        PeriodStatus
	Message       string
	Deadline      Date // first Wednesday of June
	DaysRemaining int  // days until opening (pre) or until deadline (open)
}

// CollectionStatus resolves the dues-collection window for today's year.
// Collection runs April 1 through the first Wednesday of June, inclusive.
func CollectionStatus(today Date) CollectionPeriod {
	opens := NewDate(today.Year(), time.April, 1)
	deadline := firstWeekdayOf(today.Year(), time.June, time.Wednesday)

	switch {
	case today.Before(opens):
		days := DaysBetween(today, opens)
		return CollectionPeriod{
			Status:        StatusPre,
			Message:       fmt.Sprintf("Collection opens in %d days", days),
			Deadline:      deadline,
			DaysRemaining: days,
		}
	case today.BeforeOrEqual(deadline):
		days := DaysBetween(today, deadline)
		return CollectionPeriod{
			Status:        StatusOpen,
			Message:       fmt.Sprintf("%d days until deadline", days),
			Deadline:      deadline,
			DaysRemaining: days,
		}
	default:
		return CollectionPeriod{
			Status:   StatusClosed,
			Message:  "Collection period closed",
			Deadline: deadline,
		}
	}
}

func firstWeekdayOf(year int, month time.Month, weekday time.Weekday) Date {
	d := NewDate(year, month, 1)
	for d.Weekday() != weekday {
		d = d.AddDays(1)
	}
	return d
}

// =============================================================================
// WORK-HOUR REVIEW - Year end through Mar 30
// =============================================================================

// WorkHourReview describes where today falls in the work-hour cycle.
type WorkHourReview struct {
	Status         PeriodStatus
	WorkYear       string // the work year the status refers to
	Message        string
	ReviewDeadline Date
	DaysRemaining  int
}

// WorkHourReviewStatus resolves the work-hour year cycle. The year
// accumulates hours through its last day (Feb 28/29); a review window for
// catching up on entry and approval runs from that day through March 30.
// Outside the window the current year is simply open.
func WorkHourReviewStatus(today Date) WorkHourReview {
	current := BillingYearPeriod(today) // work year shares the March epoch

	// On the year's final day (Feb 28/29) review of the ending year opens,
	// with a deadline of March 30 in the new year.
	if today.Equal(current.End) {
		deadline := NewDate(current.End.Year(), time.March, 30)
		days := DaysBetween(today, deadline)
		return WorkHourReview{
			Status:         StatusReview,
			WorkYear:       WorkYear(today),
			Message:        fmt.Sprintf("Review work hours - %d days until deadline", days),
			ReviewDeadline: deadline,
			DaysRemaining:  days,
		}
	}

	// March 1-30 continues the review of the year that ended in February.
	reviewEnd := NewDate(current.Start.Year(), time.March, 30)
	if today.BeforeOrEqual(reviewEnd) {
		days := DaysBetween(today, reviewEnd)
		return WorkHourReview{
			Status:         StatusReview,
			WorkYear:       WorkYear(current.Start.AddDays(-1)),
			Message:        fmt.Sprintf("Review work hours - %d days until deadline", days),
			ReviewDeadline: reviewEnd,
			DaysRemaining:  days,
		}
	}

	days := DaysBetween(today, current.End)
	return WorkHourReview{
		Status:         StatusOpen,
		WorkYear:       WorkYear(today),
		Message:        fmt.Sprintf("%d days left in work hour year", days),
		ReviewDeadline: NewDate(current.End.Year(), time.March, 30),
		DaysRemaining:  days,
	}
}
