package roster

// =============================================================================
// HOLIDAY PERIODS - Interval membership over configured holiday periods
// =============================================================================

// IsHolidayPeriod reports whether the date falls in any configured holiday
// period (inclusive bounds).
func (s Settings) IsHolidayPeriod(d Date) bool {
	_, ok := s.HolidayPeriodFor(d)
	return ok
}

// HolidayPeriodFor returns the first period containing the date, in insertion
// order. Periods are not expected to overlap; if they do, the first match
// wins.
func (s Settings) HolidayPeriodFor(d Date) (HolidayPeriod, bool) {
	for _, p := range s.HolidayPeriods {
		if p.Contains(d) {
			return p, true
		}
	}
	return HolidayPeriod{}, false
}
