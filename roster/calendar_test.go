package roster_test

import (
	"testing"

	"github.com/hetvlot/rooster/roster"
)

// Reference Monday 2025-01-06: Week 1, weekend closed.
func testCalendar() roster.Calendar {
	return roster.NewCalendar(roster.DefaultSettings())
}

// =============================================================================
// WEEK PARITY TESTS
// =============================================================================

func TestWeekParity_ReferenceWeekIsWeek1(t *testing.T) {
	cal := testCalendar()
	if got := cal.WeekParity(roster.MustDate("2025-01-06")); got != 1 {
		t.Errorf("reference Monday parity = %d, expected 1", got)
	}
}

func TestWeekParity_Alternates(t *testing.T) {
	cal := testCalendar()
	monday := roster.MustDate("2025-01-06")
	for i := 0; i < 8; i++ {
		expected := 1
		if i%2 == 1 {
			expected = 2
		}
		if got := cal.WeekParity(monday.AddDays(i * 7)); got != expected {
			t.Errorf("week +%d parity = %d, expected %d", i, got, expected)
		}
	}
}

func TestWeekParity_ConstantAcrossWeek(t *testing.T) {
	// GIVEN: every day of the week 2025-01-13 (Week 2)
	// THEN: parity is 2 on all seven days
	cal := testCalendar()
	for _, d := range roster.WeekDates(roster.MustDate("2025-01-15")) {
		if got := cal.WeekParity(d); got != 2 {
			t.Errorf("parity(%s) = %d, expected 2", d, got)
		}
	}
}

func TestWeekParity_BeforeReference(t *testing.T) {
	// The week right before the reference is Week 2: the pattern extends
	// backwards consistently.
	cal := testCalendar()
	if got := cal.WeekParity(roster.MustDate("2024-12-30")); got != 2 {
		t.Errorf("parity of week before reference = %d, expected 2", got)
	}
	if got := cal.WeekParity(roster.MustDate("2024-12-23")); got != 1 {
		t.Errorf("parity two weeks before reference = %d, expected 1", got)
	}
}

// =============================================================================
// WEEKEND OPEN/CLOSED TESTS
// =============================================================================

func TestIsWeekendOpen_MidweekAlwaysOpen(t *testing.T) {
	cal := testCalendar()
	for _, s := range []string{"2025-01-07", "2025-01-08", "2025-01-09"} { // Tue-Thu, Week 1
		if !cal.IsWeekendOpen(roster.MustDate(s)) {
			t.Errorf("%s (midweek) should be open", s)
		}
	}
}

func TestIsWeekendOpen_ClosedWeekend(t *testing.T) {
	// Week 1 weekend (Sat 2025-01-11, Sun 2025-01-12) is closed.
	cal := testCalendar()
	for _, s := range []string{"2025-01-11", "2025-01-12"} {
		if cal.IsWeekendOpen(roster.MustDate(s)) {
			t.Errorf("%s (Week 1 weekend) should be closed", s)
		}
	}
}

func TestIsWeekendOpen_OpenWeekend(t *testing.T) {
	// Week 2 weekend (Sat 2025-01-18, Sun 2025-01-19) is open.
	cal := testCalendar()
	for _, s := range []string{"2025-01-18", "2025-01-19"} {
		if !cal.IsWeekendOpen(roster.MustDate(s)) {
			t.Errorf("%s (Week 2 weekend) should be open", s)
		}
	}
}

func TestIsWeekendOpen_FridayLooksAhead(t *testing.T) {
	cal := testCalendar()
	// Friday 2025-01-10: upcoming Saturday is in Week 1, closed.
	if cal.IsWeekendOpen(roster.MustDate("2025-01-10")) {
		t.Error("Friday before a closed weekend should judge closed")
	}
	// Friday 2025-01-17: upcoming Saturday is in Week 2, open.
	if !cal.IsWeekendOpen(roster.MustDate("2025-01-17")) {
		t.Error("Friday before an open weekend should judge open")
	}
}

func TestIsWeekendOpen_MondayLooksBack(t *testing.T) {
	cal := testCalendar()
	// Monday 2025-01-13 follows the closed Week 1 weekend.
	if cal.IsWeekendOpen(roster.MustDate("2025-01-13")) {
		t.Error("Monday after a closed weekend should judge closed")
	}
	// Monday 2025-01-20 follows the open Week 2 weekend.
	if !cal.IsWeekendOpen(roster.MustDate("2025-01-20")) {
		t.Error("Monday after an open weekend should judge open")
	}
}

func TestISOWeekNumber(t *testing.T) {
	if got := roster.ISOWeekNumber(roster.MustDate("2025-01-06")); got != 2 {
		t.Errorf("ISO week of 2025-01-06 = %d, expected 2", got)
	}
	// 2024-12-30 belongs to ISO week 1 of 2025 (Thursday-anchored).
	if got := roster.ISOWeekNumber(roster.MustDate("2024-12-30")); got != 1 {
		t.Errorf("ISO week of 2024-12-30 = %d, expected 1", got)
	}
}

func TestWeekDates(t *testing.T) {
	dates := roster.WeekDates(roster.MustDate("2025-01-15"))
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if !dates[0].Equal(roster.MustDate("2025-01-13")) || !dates[6].Equal(roster.MustDate("2025-01-19")) {
		t.Errorf("week span %s..%s, expected 2025-01-13..2025-01-19", dates[0], dates[6])
	}
}
