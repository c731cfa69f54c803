/*
overtime.go - Overtime and night-credit calculation

PURPOSE:
  Converts raw worked minutes into credited minutes and aggregates them per
  calendar week against contracted minutes. Models the labor-law night-shift
  compensation scheme: a night on duty earns a flat 8-hour base credit for
  the passive/sleep portion, double credit for active (awake) minutes up to
  a cap, plus an optional flat forfait bonus.

WEEK GROUPING:
  Credited minutes are grouped by the Monday of the shift's START date. A
  shift crossing midnight is attributed wholly to the week of its start day.
  Deliberate simplification, pinned by tests.
*/
package roster

// Night-credit constants, in minutes.
const (
	nightBaseCreditMinutes = 480 // flat 8h credit for a night on duty
	nightActiveCreditCap   = 480 // active minutes credit at 2x, capped here
)

// CreditedMinutesForNightShift returns the credited minutes for a night shift
// on the given date: 480 base + min(2*active, 480) + forfait. Negative inputs
// clamp to zero.
func CreditedMinutesForNightShift(date Date, nightActiveMinutes, forfaitMinutes int) int {
	if nightActiveMinutes < 0 {
		nightActiveMinutes = 0
	}
	if forfaitMinutes < 0 {
		forfaitMinutes = 0
	}
	credited := nightActiveMinutes * 2
	if credited > nightActiveCreditCap {
		credited = nightActiveCreditCap
	}
	return nightBaseCreditMinutes + credited + forfaitMinutes
}

// WeeklyOvertime groups credited minutes by the Monday of their date, sums
// each week, and returns the total positive excess over the weekly contract
// minutes across all weeks. Weeks under contract never offset weeks over.
func WeeklyOvertime(creditedMinutesByDate map[Date]int, contractMinutesPerWeek int) int {
	weekTotals := map[Date]int{}
	for date, minutes := range creditedMinutesByDate {
		if minutes < 0 {
			minutes = 0
		}
		weekTotals[date.MondayOf()] += minutes
	}

	overtime := 0
	for _, total := range weekTotals {
		if total > contractMinutesPerWeek {
			overtime += total - contractMinutesPerWeek
		}
	}
	return overtime
}
