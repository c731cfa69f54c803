/*
Package roster provides the core scheduling rule engine.

PURPOSE:
  This package contains the domain model and algorithms for a residential-care
  shift roster: the bi-weekly calendar, the weekend/holiday responsible
  rotation, the shift validation rule set, and the overtime/night-credit
  calculator. It consumes plain data (employees, shifts, absences, settings)
  and returns structured results; it performs no I/O of its own except where
  the auto-scheduler explicitly writes through a store interface.

KEY CONCEPTS IN THIS FILE (types.go):
  - EmployeeID: opaque string-backed identifier (never numeric)
  - TeamID: closed team enumeration (vlot1, vlot2, cargo, ...)
  - Employee: roster member with team memberships and week templates
  - Shift: a scheduled duty on a date; end before start means overnight
  - Absence: opt-out availability record (no record = available)

DESIGN PRINCIPLES:
  1. Purity: every rule-engine function is a function of its inputs
  2. Precision: decimal.Decimal for fractional hours, never float64
  3. Type Safety: string-backed IDs, closed enums with exhaustive switches
  4. Fail fast: malformed dates/times are contract violations, not warnings

SEE ALSO:
  - settings.go: process-wide configuration value
  - validation.go: the rule pipeline judging shifts
  - rotation.go: responsible-employee rotation
*/
package roster

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// EmployeeID is an opaque, string-backed identifier. The original system mixed
// numeric and string IDs and compared them via string coercion; here the ID is
// a string everywhere so the hazard cannot exist.
type EmployeeID string

type ShiftID string
type AbsenceID string

// =============================================================================
// TEAMS - Closed enumeration
// =============================================================================

// TeamID identifies one of the configured teams. The set is closed: staffing
// logic switches exhaustively over these values, so adding a team is a
// compile-time-checked change.
type TeamID string

const (
	TeamVlot1         TeamID = "vlot1"
	TeamVlot2         TeamID = "vlot2"
	TeamCargo         TeamID = "cargo"
	TeamOverkoepelend TeamID = "overkoepelend"
	TeamJobstudent    TeamID = "jobstudent"
)

// ResidentialTeams are the live-in groups subject to day and night staffing
// minimums. Cargo (day activities), overkoepelend (office) and jobstudent are
// support teams and carry no coverage requirement of their own.
func ResidentialTeams() []TeamID { return []TeamID{TeamVlot1, TeamVlot2} }

// IsResidential reports whether the team is staffing-checked.
func (t TeamID) IsResidential() bool {
	switch t {
	case TeamVlot1, TeamVlot2:
		return true
	case TeamCargo, TeamOverkoepelend, TeamJobstudent:
		return false
	default:
		return false
	}
}

// Team holds the display configuration for a team.
type Team struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// DaySchedule is one entry of a week template: what an employee normally works
// on a given weekday. DayOfWeek uses 0=Sunday..6=Saturday.
type DaySchedule struct {
	DayOfWeek int       `json:"dayOfWeek"`
	Enabled   bool      `json:"enabled"`
	Team      TeamID    `json:"team"`
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
}

// WeekSchedule is an employee's fixed template for one week of the bi-weekly
// pattern. At most one entry per weekday.
type WeekSchedule []DaySchedule

// ForDay returns the enabled entry for the weekday, if any.
func (ws WeekSchedule) ForDay(dayOfWeek int) (DaySchedule, bool) {
	for _, ds := range ws {
		if ds.DayOfWeek == dayOfWeek && ds.Enabled {
			return ds, true
		}
	}
	return DaySchedule{}, false
}

// Employee is a roster member.
type Employee struct {
	ID            EmployeeID      `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	MainTeam      TeamID          `json:"mainTeam"`
	ExtraTeams    []TeamID        `json:"extraTeams"`
	ContractHours decimal.Decimal `json:"contractHours"` // weekly contracted hours
	Active        bool            `json:"active"`
	Week1         WeekSchedule    `json:"weekScheduleWeek1"`
	Week2         WeekSchedule    `json:"weekScheduleWeek2"`
}

// CanWork reports whether the team is the employee's main team or one of the
// extra teams it may work under.
func (e Employee) CanWork(team TeamID) bool {
	if e.MainTeam == team {
		return true
	}
	for _, t := range e.ExtraTeams {
		if t == team {
			return true
		}
	}
	return false
}

// ContractMinutesPerWeek converts the weekly contract hours to whole minutes.
func (e Employee) ContractMinutesPerWeek() int {
	return int(e.ContractHours.Mul(decimal.NewFromInt(60)).IntPart())
}

// =============================================================================
// SHIFT
// =============================================================================

// Shift is a scheduled duty. An EndTime earlier in the day than StartTime
// denotes an overnight shift ending the next calendar day.
type Shift struct {
	ID         ShiftID    `json:"id"`
	EmployeeID EmployeeID `json:"employeeId"`
	Team       TeamID     `json:"team"`
	Date       Date       `json:"date"`
	StartTime  TimeOfDay  `json:"startTime"`
	EndTime    TimeOfDay  `json:"endTime"`
	Notes      string     `json:"notes"`
}

// =============================================================================
// ABSENCE - Opt-out availability
// =============================================================================

// AbsenceType classifies why an employee is unavailable.
type AbsenceType string

const (
	AbsenceVerlof   AbsenceType = "verlof"   // annual leave
	AbsenceZiek     AbsenceType = "ziek"     // sick
	AbsenceOveruren AbsenceType = "overuren" // compensating overtime
	AbsenceVorming  AbsenceType = "vorming"  // training
	AbsenceAndere   AbsenceType = "andere"   // other
)

// Label returns the human-readable Dutch label used in warnings.
func (a AbsenceType) Label() string {
	switch a {
	case AbsenceVerlof:
		return "Verlof"
	case AbsenceZiek:
		return "Ziekte"
	case AbsenceOveruren:
		return "Overuren opnemen"
	case AbsenceVorming:
		return "Vorming/Opleiding"
	case AbsenceAndere:
		return "Andere"
	default:
		return "Afwezig"
	}
}

// Absence marks an employee unavailable on a date. The model is opt-out: the
// absence of a record means available. One record per (employee, date).
type Absence struct {
	ID         AbsenceID   `json:"id"`
	EmployeeID EmployeeID  `json:"employeeId"`
	Date       Date        `json:"date"`
	Type       AbsenceType `json:"type"`
	Reason     string      `json:"reason"`
}
