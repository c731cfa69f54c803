package roster_test

import (
	"testing"

	"github.com/hetvlot/rooster/roster"
)

// =============================================================================
// HOUR REPORT TESTS
// =============================================================================

func hoursFixture() roster.Dataset {
	return roster.Dataset{
		Employees: []roster.Employee{anna()},
		Shifts: []roster.Shift{
			validatorShift("s1", "emp-anna", "2025-03-10", "07:30", "16:00", roster.TeamVlot1), // 8.5h
			validatorShift("s2", "emp-anna", "2025-03-12", "23:00", "09:00", roster.TeamVlot1), // night, 2h active
			validatorShift("s3", "emp-anna", "2025-03-20", "09:00", "17:00", roster.TeamVlot1), // 8h, next week
			validatorShift("s4", "emp-bert", "2025-03-10", "09:00", "17:00", roster.TeamVlot1), // other employee
		},
	}
}

func TestHoursInPeriod(t *testing.T) {
	data := hoursFixture()
	decEqual(t, data.HoursInPeriod("emp-anna", roster.MustDate("2025-03-10"), roster.MustDate("2025-03-16")),
		"10.5", "HoursInPeriod")
}

func TestHoursInWeek(t *testing.T) {
	// Any day of the week yields the same Monday-anchored total.
	data := hoursFixture()
	decEqual(t, data.HoursInWeek("emp-anna", roster.MustDate("2025-03-13")), "10.5", "HoursInWeek")
}

func TestHoursInMonth(t *testing.T) {
	data := hoursFixture()
	decEqual(t, data.HoursInMonth("emp-anna", roster.MustDate("2025-03-01")), "18.5", "HoursInMonth")
}

// =============================================================================
// LOOKUP TESTS
// =============================================================================

func TestShiftsByEmployee_Exclude(t *testing.T) {
	data := hoursFixture()
	all := data.ShiftsByEmployee("emp-anna", "")
	if len(all) != 3 {
		t.Fatalf("shifts = %d, expected 3", len(all))
	}
	without := data.ShiftsByEmployee("emp-anna", "s2")
	if len(without) != 2 {
		t.Errorf("excluded shifts = %d, expected 2", len(without))
	}
}

func TestEmployeesByTeam(t *testing.T) {
	data := roster.Dataset{Employees: []roster.Employee{anna(), bert()}}

	// Bert works cargo only as an extra team.
	if got := data.EmployeesByTeam(roster.TeamCargo, false); len(got) != 0 {
		t.Errorf("main-team cargo members = %d, expected 0", len(got))
	}
	if got := data.EmployeesByTeam(roster.TeamCargo, true); len(got) != 1 || got[0].Name != "Bert" {
		t.Errorf("cargo members incl. extra = %v", got)
	}
}

func TestShiftsByTeamInRange(t *testing.T) {
	data := hoursFixture()
	got := data.ShiftsByTeamInRange(roster.TeamVlot1, roster.MustDate("2025-03-10"), roster.MustDate("2025-03-12"))
	if len(got) != 3 {
		t.Errorf("vlot1 shifts in range = %d, expected 3", len(got))
	}
}

func TestAbsenceFor_OptOut(t *testing.T) {
	data := roster.Dataset{Absences: []roster.Absence{{
		EmployeeID: "emp-anna", Date: roster.MustDate("2025-03-10"), Type: roster.AbsenceZiek,
	}}}
	if _, ok := data.AbsenceFor("emp-anna", roster.MustDate("2025-03-10")); !ok {
		t.Error("recorded absence should be found")
	}
	// No record means available.
	if _, ok := data.AbsenceFor("emp-anna", roster.MustDate("2025-03-11")); ok {
		t.Error("no record should mean available")
	}
}
