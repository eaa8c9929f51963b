package engine_test

import (
	"testing"
	"time"

	"github.com/bizagent538-commits/membership/engine"
)

func date(year int, month time.Month, day int) engine.Date {
	return engine.NewDate(year, month, day)
}

// =============================================================================
// STRICT DATE PARSING
// =============================================================================

func TestParseDate_ValidDates(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1962-03-15", "1962-03-15"},
		{"2024-02-29", "2024-02-29"}, // leap day
		{"1900-01-01", "1900-01-01"},
		{"2100-12-31", "2100-12-31"},
		// Timestamp suffixes from upstream exports are tolerated; the date
		// component must not shift.
		{"1985-10-02T00:00:00.000Z", "1985-10-02"},
		{"1985-10-02T23:59:59Z", "1985-10-02"},
	}

	for _, c := range cases {
		got, err := engine.ParseDate(c.in)
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", c.in, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseDate_RejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"2025-02-30", // impossible day
		"2025-13-01", // impossible month
		"2023-02-29", // not a leap year
		"2025-00-10",
		"2025-01-00",
		"1899-12-31", // before supported range
		"2101-01-01", // after supported range
		"2025-01",
		"2025-01-02-03",
		"2025/01/02",
	}

	for _, c := range cases {
		if _, err := engine.ParseDate(c); err == nil {
			t.Errorf("ParseDate(%q): expected error, got none", c)
		}
	}
}

// =============================================================================
// AGE
// =============================================================================

func TestAge_FloorsToLastBirthday(t *testing.T) {
	today := date(2025, time.June, 1)

	cases := []struct {
		dob  engine.Date
		want int
	}{
		{date(1955, time.January, 1), 70},  // birthday passed
		{date(1963, time.June, 1), 62},     // birthday today counts
		{date(1963, time.June, 2), 61},     // birthday tomorrow does not
		{date(1963, time.December, 25), 61},
	}

	for _, c := range cases {
		got, ok := engine.Age(c.dob, today)
		if !ok {
			t.Errorf("Age(%s): unexpectedly unknown", c.dob)
			continue
		}
		if got != c.want {
			t.Errorf("Age(%s) = %d, want %d", c.dob, got, c.want)
		}
	}
}

func TestAge_FutureBirthDateIsUnknownNotNegative(t *testing.T) {
	// GIVEN: A date of birth one day in the future (bad import data)
	// WHEN: Computing age
	// THEN: The result is unknown, never a negative number
	today := date(2025, time.June, 1)

	if _, ok := engine.Age(date(2025, time.June, 2), today); ok {
		t.Error("expected unknown age for future date of birth")
	}
	if _, ok := engine.Age(engine.Date{}, today); ok {
		t.Error("expected unknown age for zero date of birth")
	}
}

// =============================================================================
// CONSECUTIVE YEARS
// =============================================================================

func TestConsecutiveYears_FloorsToLastAnniversary(t *testing.T) {
	today := date(2025, time.July, 2)

	cases := []struct {
		join engine.Date
		want int
	}{
		{date(2015, time.July, 1), 10}, // anniversary yesterday
		{date(2015, time.July, 2), 10}, // anniversary today counts
		{date(2015, time.July, 3), 9},  // anniversary tomorrow does not
		{date(1990, time.January, 1), 35},
		{date(2025, time.July, 2), 0},
	}

	for _, c := range cases {
		if got := engine.ConsecutiveYears(c.join, today); got != c.want {
			t.Errorf("ConsecutiveYears(%s) = %d, want %d", c.join, got, c.want)
		}
	}
}

func TestConsecutiveYears_NeverNegative(t *testing.T) {
	today := date(2025, time.June, 1)

	if got := engine.ConsecutiveYears(date(2026, time.January, 1), today); got != 0 {
		t.Errorf("future join date: got %d, want 0", got)
	}
	if got := engine.ConsecutiveYears(engine.Date{}, today); got != 0 {
		t.Errorf("zero join date: got %d, want 0", got)
	}
}
