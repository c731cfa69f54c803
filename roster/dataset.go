/*
dataset.go - In-memory snapshot consumed by the rule engine

PURPOSE:
  Dataset is the plain-data view of the roster the engine computes over:
  employees, shifts, and absences. External collaborators (the API layer,
  the store) assemble a Dataset and hand it to the validator, rotation
  engine, and hour reports. The engine never mutates it.

LOOKUPS:
  Mirrors the query surface the rest of the system needs: by employee, by
  date, by date range, by team, and the (employee, date) absence lookup with
  opt-out semantics (no record = available).
*/
package roster

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Dataset is an immutable snapshot of roster data.
type Dataset struct {
	Employees []Employee
	Shifts    []Shift
	Absences  []Absence
}

// EmployeeByID returns the employee, if present.
func (d Dataset) EmployeeByID(id EmployeeID) (Employee, bool) {
	for _, e := range d.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// ActiveEmployees returns all active employees.
func (d Dataset) ActiveEmployees() []Employee {
	var out []Employee
	for _, e := range d.Employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// EmployeesByTeam returns active employees whose main team (or, when
// includeExtra is set, one of their extra teams) matches.
func (d Dataset) EmployeesByTeam(team TeamID, includeExtra bool) []Employee {
	var out []Employee
	for _, e := range d.Employees {
		if !e.Active {
			continue
		}
		if e.MainTeam == team || (includeExtra && e.CanWork(team)) {
			out = append(out, e)
		}
	}
	return out
}

// ShiftsOn returns all shifts starting on the date.
func (d Dataset) ShiftsOn(date Date) []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out
}

// ShiftsInRange returns shifts with start dates in [from, to].
func (d Dataset) ShiftsInRange(from, to Date) []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.Date.AfterOrEqual(from) && s.Date.BeforeOrEqual(to) {
			out = append(out, s)
		}
	}
	return out
}

// ShiftsByEmployee returns the employee's shifts, optionally excluding one
// shift by ID (the shift being edited, for in-place revalidation).
func (d Dataset) ShiftsByEmployee(id EmployeeID, exclude ShiftID) []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.EmployeeID == id && (exclude == "" || s.ID != exclude) {
			out = append(out, s)
		}
	}
	return out
}

// ShiftsByEmployeeInRange returns the employee's shifts in [from, to].
func (d Dataset) ShiftsByEmployeeInRange(id EmployeeID, from, to Date) []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.EmployeeID == id && s.Date.AfterOrEqual(from) && s.Date.BeforeOrEqual(to) {
			out = append(out, s)
		}
	}
	return out
}

// ShiftsByTeamInRange returns the team's shifts in [from, to].
func (d Dataset) ShiftsByTeamInRange(team TeamID, from, to Date) []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.Team == team && s.Date.AfterOrEqual(from) && s.Date.BeforeOrEqual(to) {
			out = append(out, s)
		}
	}
	return out
}

// AbsenceFor returns the absence record for (employee, date), if one exists.
// No record means the employee is available.
func (d Dataset) AbsenceFor(id EmployeeID, date Date) (Absence, bool) {
	for _, a := range d.Absences {
		if a.EmployeeID == id && a.Date.Equal(date) {
			return a, true
		}
	}
	return Absence{}, false
}

// SortedByName returns the employees sorted by display name. Deterministic
// tie-break for the rotation pool.
func SortedByName(employees []Employee) []Employee {
	out := make([]Employee, len(employees))
	copy(out, employees)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// =============================================================================
// HOUR REPORTS
// =============================================================================

// HoursInPeriod sums an employee's active hours (sleep window excluded) over
// shifts starting in [from, to].
func (d Dataset) HoursInPeriod(id EmployeeID, from, to Date) decimal.Decimal {
	total := decimal.Zero
	for _, s := range d.ShiftsByEmployeeInRange(id, from, to) {
		total = total.Add(s.ActiveHours())
	}
	return total
}

// HoursInWeek sums active hours for the calendar week containing the date.
func (d Dataset) HoursInWeek(id EmployeeID, anyDayOfWeek Date) decimal.Decimal {
	monday := anyDayOfWeek.MondayOf()
	return d.HoursInPeriod(id, monday, monday.AddDays(6))
}

// HoursInMonth sums active hours for the calendar month containing the date.
// Month overflow normalizes per time.Date, so December rolls into January.
func (d Dataset) HoursInMonth(id EmployeeID, anyDayOfMonth Date) decimal.Decimal {
	first := NewDate(anyDayOfMonth.Year(), anyDayOfMonth.Month(), 1)
	last := NewDate(anyDayOfMonth.Year(), anyDayOfMonth.Month()+1, 1).AddDays(-1)
	return d.HoursInPeriod(id, first, last)
}
