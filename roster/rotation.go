/*
rotation.go - Weekend/holiday responsible rotation

PURPOSE:
  Assigns a "responsible" employee to every week that needs one: open
  weekends (Week 2) and weeks touching a holiday period. The assignment is a
  deterministic round-robin over the eligible pool, recomputed on demand, so
  the schedule is fair and auditable without stored state.

PRECEDENCE:
  1. Manual assignment for the week's Monday - always wins.
  2. No rotation configured - no responsible.
  3. Otherwise: count qualifying weeks from the rotation start (inclusive)
     up to the target Monday (exclusive) and step through the pool mod its
     size. Only qualifying weeks advance the rotation; closed non-holiday
     weeks need nobody and are skipped.

DRIFT:
  The pool is recomputed live from the current roster. Deactivating or
  re-teaming an employee shifts past computed answers; pinning a manual
  assignment freezes a week explicitly. See DESIGN.md.
*/
package roster

// Rotation computes responsible assignments from settings and the roster.
type Rotation struct {
	Calendar Calendar
	Settings Settings
	Data     Dataset
}

// NewRotation builds a Rotation over the given snapshot.
func NewRotation(settings Settings, data Dataset) Rotation {
	return Rotation{Calendar: NewCalendar(settings), Settings: settings, Data: data}
}

// EligiblePool returns active employees whose main team is eligible, sorted
// by name for a deterministic order.
func (r Rotation) EligiblePool() []Employee {
	eligible := map[TeamID]bool{}
	for _, t := range r.Settings.Rotation.EligibleTeams {
		eligible[t] = true
	}
	var pool []Employee
	for _, e := range r.Data.Employees {
		if e.Active && eligible[e.MainTeam] {
			pool = append(pool, e)
		}
	}
	return SortedByName(pool)
}

// IsWeekendOrHolidayWeek reports whether the week starting at the given
// Monday needs a responsible: its weekend is open, or any of its seven days
// falls in a holiday period.
func (r Rotation) IsWeekendOrHolidayWeek(monday Date) bool {
	if r.Calendar.WeekParity(monday) == 2 {
		return true
	}
	for _, day := range WeekDates(monday) {
		if r.Settings.IsHolidayPeriod(day) {
			return true
		}
	}
	return false
}

// ManualAssignment returns the manually pinned responsible for the week, if
// one exists.
func (r Rotation) ManualAssignment(monday Date) (Employee, bool) {
	id, ok := r.Settings.Rotation.Assignments[monday.MondayOf().String()]
	if !ok {
		return Employee{}, false
	}
	return r.Data.EmployeeByID(id)
}

// ResponsibleFor returns the employee on duty-of-record for the week starting
// at the given Monday, or false if none applies.
func (r Rotation) ResponsibleFor(monday Date) (Employee, bool) {
	monday = monday.MondayOf()

	if emp, ok := r.ManualAssignment(monday); ok {
		return emp, true
	}

	cfg := r.Settings.Rotation
	if cfg.RotationStart.IsZero() || cfg.RotationStartEmployee == "" {
		return Employee{}, false
	}

	pool := r.EligiblePool()
	if len(pool) == 0 {
		return Employee{}, false
	}

	startIndex := 0
	for i, e := range pool {
		if e.ID == cfg.RotationStartEmployee {
			startIndex = i
			break
		}
	}

	start := cfg.RotationStart.MondayOf()
	if monday.Before(start) {
		return Employee{}, false
	}

	// Qualifying weeks in [start, monday), stepping week by week. The target
	// week itself does not advance the rotation.
	count := 0
	for current := start; current.Before(monday); current = current.AddDays(7) {
		if r.IsWeekendOrHolidayWeek(current) {
			count++
		}
	}

	return pool[(startIndex+count)%len(pool)], true
}
