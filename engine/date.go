/*
Package engine implements the club's billing and eligibility rules.

PURPOSE:
  This package contains the pure calculation core: fiscal-period
  resolution, dues computation with join-date proration, work-hour
  buyout, and Life-membership eligibility under the Longevity, Legacy,
  and Standard rules.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A local calendar date with no time-of-day or timezone
  - ParseDate: Strict YYYY-MM-DD parsing
  - Age / ConsecutiveYears: The two derived values every rule needs

DESIGN PRINCIPLES:
  1. Purity: No I/O, no clocks. Every function takes "today" explicitly.
  2. Precision: decimal.Decimal for all money and hours, never float64.
  3. Calendar dates, not instants: "1962-03-15" is March 15 everywhere.
     Converting date strings through a timestamp shifts them by a day
     near midnight in non-UTC zones; Date never does that.
  4. No negative ages: invalid or future birth dates yield "unknown",
     never a negative number.

USAGE:
  dob, err := engine.ParseDate("1962-03-15")
  age, ok := engine.Age(dob, engine.Today())

SEE ALSO:
  - calendar.go: Fiscal year, work-hour year, and billing quarter math
  - billing.go: Dues calculation
  - eligibility.go: Life-membership rules
*/
package engine

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - Local calendar date
// =============================================================================

// Date is a calendar date with day granularity. The zero value means
// "unknown" (e.g., a member with no date of birth on file).
type Date struct {
	t time.Time
}

// NewDate builds a Date from components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in the local timezone. The engine never
// calls this internally; callers resolve "today" once and pass it down.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a strict YYYY-MM-DD calendar date. It rejects anything
// that is not exactly three numeric components forming a real calendar day
// in 1900-2100. A trailing time component (as exported by some upstream
// systems, "1962-03-15T00:00:00.000Z") is tolerated and ignored: only the
// date part is read, component by component, so the result never shifts
// across a day boundary regardless of the host timezone.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, ErrInvalidDate
	}

	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, ErrInvalidDate
	}
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, ErrInvalidDate
	}

	d := NewDate(year, time.Month(month), day)
	// time.Date normalizes impossible dates (Feb 30 -> Mar 2); a round-trip
	// mismatch means the components were not a real calendar day.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return Date{}, ErrInvalidDate
	}
	return d, nil
}

// MustParseDate is ParseDate for hard-coded dates (tests, seed data).
// It panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic("engine: bad date literal " + s)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }
func (d Date) AddYears(n int) Date  { return Date{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// String returns the date in YYYY-MM-DD form, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format("2006-01-02")
}

// DaysBetween returns the whole days from one date to another
// (positive when to is after from).
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// DERIVED VALUES - Age and consecutive years
// =============================================================================

// Age returns whole years of age as of today. ok is false when the birth
// date is unknown (zero) or lies in the future; the result is never
// negative.
func Age(dateOfBirth, today Date) (int, bool) {
	if dateOfBirth.IsZero() || dateOfBirth.After(today) {
		return 0, false
	}

	years := today.Year() - dateOfBirth.Year()
	if beforeAnniversary(dateOfBirth, today) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

// ConsecutiveYears returns whole years of continuous membership since the
// original join date, floor-rounded to the last anniversary. Unknown or
// future join dates yield 0.
func ConsecutiveYears(originalJoinDate, today Date) int {
	if originalJoinDate.IsZero() {
		return 0
	}

	years := today.Year() - originalJoinDate.Year()
	if beforeAnniversary(originalJoinDate, today) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// beforeAnniversary reports whether today's month/day has not yet reached
// the anniversary of the anchor date this year.
func beforeAnniversary(anchor, today Date) bool {
	if today.Month() != anchor.Month() {
		return today.Month() < anchor.Month()
	}
	return today.Day() < anchor.Day()
}
