package engine_test

import (
	"testing"
	"time"

	"github.com/bizagent538-commits/membership/engine"
)

// =============================================================================
// YEAR RESOLUTION
// =============================================================================

func TestFiscalYear_JulyEpoch(t *testing.T) {
	cases := []struct {
		d    engine.Date
		want string
	}{
		{date(2025, time.July, 1), "2025-2026"},
		{date(2025, time.June, 30), "2024-2025"},
		{date(2025, time.December, 31), "2025-2026"},
		{date(2026, time.January, 1), "2025-2026"},
	}

	for _, c := range cases {
		if got := engine.FiscalYear(c.d); got != c.want {
			t.Errorf("FiscalYear(%s) = %s, want %s", c.d, got, c.want)
		}
	}
}

func TestWorkYear_MarchEpoch(t *testing.T) {
	cases := []struct {
		d    engine.Date
		want string
	}{
		{date(2025, time.March, 1), "2025-2026"},
		{date(2025, time.February, 28), "2024-2025"},
		{date(2026, time.January, 15), "2025-2026"},
	}

	for _, c := range cases {
		if got := engine.WorkYear(c.d); got != c.want {
			t.Errorf("WorkYear(%s) = %s, want %s", c.d, got, c.want)
		}
	}
}

func TestBillingYearPeriod_LeapAware(t *testing.T) {
	// GIVEN: A billing year starting March 1, 2023
	// THEN: It ends February 29, 2024 - the leap day belongs to it
	p := engine.BillingYearPeriod(date(2023, time.June, 1))
	if p.Start != date(2023, time.March, 1) {
		t.Errorf("start = %s, want 2023-03-01", p.Start)
	}
	if p.End != date(2024, time.February, 29) {
		t.Errorf("end = %s, want 2024-02-29", p.End)
	}
	if !p.Contains(date(2024, time.February, 29)) {
		t.Error("leap day should fall inside the billing year")
	}
	if p.Contains(date(2024, time.March, 1)) {
		t.Error("next March 1 should start the following billing year")
	}
}

func TestSameBillingYear(t *testing.T) {
	if !engine.SameBillingYear(date(2025, time.March, 1), date(2026, time.February, 28)) {
		t.Error("Mar 1 and following Feb 28 share a billing year")
	}
	if engine.SameBillingYear(date(2025, time.February, 28), date(2025, time.March, 1)) {
		t.Error("Feb 28 and following Mar 1 are different billing years")
	}
}

// =============================================================================
// QUARTERS AND PRORATION
// =============================================================================

func TestBillingQuarter_MarchEpoch(t *testing.T) {
	cases := []struct {
		d    engine.Date
		want int
	}{
		{date(2025, time.March, 1), 1},
		{date(2025, time.May, 31), 1},
		{date(2025, time.June, 1), 2},
		{date(2025, time.August, 31), 2},
		{date(2025, time.September, 1), 3},
		{date(2025, time.November, 30), 3},
		{date(2025, time.December, 1), 4},
		{date(2026, time.February, 28), 4},
	}

	for _, c := range cases {
		if got := engine.BillingQuarter(c.d); got != c.want {
			t.Errorf("BillingQuarter(%s) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestProrationMultipliers(t *testing.T) {
	forward := map[int]string{1: "1", 2: "0.75", 3: "0.5", 4: "0.25"}
	reverse := map[int]string{1: "0", 2: "0.25", 3: "0.5", 4: "0.75"}

	for q, want := range forward {
		if got := engine.ProrationMultiplier(q); got.String() != want {
			t.Errorf("ProrationMultiplier(%d) = %s, want %s", q, got, want)
		}
	}
	for q, want := range reverse {
		if got := engine.ReverseProrationMultiplier(q); got.String() != want {
			t.Errorf("ReverseProrationMultiplier(%d) = %s, want %s", q, got, want)
		}
	}
}

// =============================================================================
// COLLECTION PERIOD
// =============================================================================

func TestCollectionStatus_Transitions(t *testing.T) {
	// 2025: first Wednesday of June is June 4.
	pre := engine.CollectionStatus(date(2025, time.March, 31))
	if pre.Status != engine.StatusPre {
		t.Errorf("Mar 31: status = %s, want pre", pre.Status)
	}
	if pre.DaysRemaining != 1 {
		t.Errorf("Mar 31: days until opening = %d, want 1", pre.DaysRemaining)
	}

	open := engine.CollectionStatus(date(2025, time.April, 1))
	if open.Status != engine.StatusOpen {
		t.Errorf("Apr 1: status = %s, want open", open.Status)
	}
	if open.Deadline != date(2025, time.June, 4) {
		t.Errorf("deadline = %s, want 2025-06-04", open.Deadline)
	}

	deadlineDay := engine.CollectionStatus(date(2025, time.June, 4))
	if deadlineDay.Status != engine.StatusOpen {
		t.Errorf("deadline day: status = %s, want open", deadlineDay.Status)
	}
	if deadlineDay.DaysRemaining != 0 {
		t.Errorf("deadline day: days remaining = %d, want 0", deadlineDay.DaysRemaining)
	}

	closed := engine.CollectionStatus(date(2025, time.June, 5))
	if closed.Status != engine.StatusClosed {
		t.Errorf("Jun 5: status = %s, want closed", closed.Status)
	}
}

// =============================================================================
// WORK-HOUR REVIEW
// =============================================================================

func TestWorkHourReviewStatus_Cycle(t *testing.T) {
	// Mid-year: accumulating.
	open := engine.WorkHourReviewStatus(date(2025, time.October, 10))
	if open.Status != engine.StatusOpen {
		t.Errorf("Oct 10: status = %s, want open", open.Status)
	}
	if open.WorkYear != "2025-2026" {
		t.Errorf("Oct 10: work year = %s, want 2025-2026", open.WorkYear)
	}

	// Final day of the work year opens the review window.
	endDay := engine.WorkHourReviewStatus(date(2026, time.February, 28))
	if endDay.Status != engine.StatusReview {
		t.Errorf("Feb 28: status = %s, want review", endDay.Status)
	}
	if endDay.ReviewDeadline != date(2026, time.March, 30) {
		t.Errorf("Feb 28: deadline = %s, want 2026-03-30", endDay.ReviewDeadline)
	}

	// March 1-30 reviews the year that just ended.
	review := engine.WorkHourReviewStatus(date(2026, time.March, 15))
	if review.Status != engine.StatusReview {
		t.Errorf("Mar 15: status = %s, want review", review.Status)
	}
	if review.WorkYear != "2025-2026" {
		t.Errorf("Mar 15: reviewing %s, want 2025-2026", review.WorkYear)
	}

	// March 31: review closed, new year accumulating.
	after := engine.WorkHourReviewStatus(date(2026, time.March, 31))
	if after.Status != engine.StatusOpen {
		t.Errorf("Mar 31: status = %s, want open", after.Status)
	}
	if after.WorkYear != "2026-2027" {
		t.Errorf("Mar 31: work year = %s, want 2026-2027", after.WorkYear)
	}
}
