/*
shifttime.go - Shift time algebra

PURPOSE:
  Converts (date, HH:MM) pairs into absolute instants, handles overnight
  wraparound, and computes duration, overlap, and the rest gap between
  shifts. All times are naive wall-clock values; the domain never crosses
  timezones.

OVERNIGHT DETECTION:
  A shift whose end hour is smaller than its start hour ends the next
  calendar day. Detection is by hour comparison, not full duration; starts
  are hour-granular in practice, so this is sufficient for the domain.

PRECISION:
  Fractional hours are decimal.Decimal, never float64. A 10-hour-45-minute
  rest gap is exactly 10.75.
*/
package roster

import (
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Start returns the shift's starting instant.
func (s Shift) Start() time.Time {
	return s.Date.At(s.StartTime)
}

// End returns the shift's ending instant, advanced one calendar day for
// overnight shifts.
func (s Shift) End() time.Time {
	end := s.Date.At(s.EndTime)
	if s.EndTime.Hour < s.StartTime.Hour {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// IsOvernight reports whether the shift crosses midnight.
func (s Shift) IsOvernight() bool {
	return s.EndTime.Hour < s.StartTime.Hour
}

// Duration returns the shift length in fractional hours.
func (s Shift) Duration() decimal.Decimal {
	minutes := int(s.End().Sub(s.Start()).Minutes())
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

// HoursBetween returns the absolute gap between the end of a and the start of
// b, in fractional hours. Always >= 0.
func HoursBetween(a, b Shift) decimal.Decimal {
	gap := b.Start().Sub(a.End())
	if gap < 0 {
		gap = -gap
	}
	minutes := int(gap.Minutes())
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

// Overlap reports whether two shifts occupy overlapping time spans.
// Half-open interval test: touching endpoints do not overlap.
func Overlap(a, b Shift) bool {
	return a.Start().Before(b.End()) && b.Start().Before(a.End())
}

// Sleep window for overnight shifts: presence between 23:00 and 07:00 the
// next morning is passive and does not count toward worked hours.
var (
	sleepStart = MustTimeOfDay("23:00")
	sleepEnd   = MustTimeOfDay("07:00")
)

// ActiveHours returns the shift's worked hours with the overlapping part of
// the 23:00-07:00 sleep window subtracted. Used for hour reports; the
// overtime calculator credits night time separately.
func (s Shift) ActiveHours() decimal.Decimal {
	start := s.Start()
	end := s.End()

	windowStart := s.Date.At(sleepStart)
	windowEnd := s.Date.AddDays(1).At(sleepEnd)

	overlapStart := start
	if windowStart.After(overlapStart) {
		overlapStart = windowStart
	}
	overlapEnd := end
	if windowEnd.Before(overlapEnd) {
		overlapEnd = windowEnd
	}

	minutes := int(end.Sub(start).Minutes())
	if overlapEnd.After(overlapStart) {
		minutes -= int(overlapEnd.Sub(overlapStart).Minutes())
	}
	if minutes < 0 {
		minutes = 0
	}
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}
