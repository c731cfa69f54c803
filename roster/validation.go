/*
validation.go - Shift validation rule set

PURPOSE:
  Judges shifts against the planning rules. Six independent checks run
  unconditionally and their results are concatenated; failure of one check
  never suppresses another. Business-rule violations are returned as Issues,
  never as Go errors.

SEVERITY:
  ERROR   blocks (rest below minimum, overlapping shifts)
  WARNING advises (short rest margin, team mismatch, closed weekend,
          absence conflict, under/overstaffing)

REST BAND:
  The minimum rest is configurable (rules.minHoursBetweenShifts). The
  advisory band is [min, min+1): one extra hour of margin that follows the
  minimum when it is reconfigured.

STAFFING:
  Evaluated at the day level, not per shift, at the coverage checkpoints
  07, 10, 16, 19 and 22. Residential teams are checked independently in
  normal periods; during a holiday period Vlot 1 and Vlot 2 are pooled
  against the holiday day minimum. The 22:00 night slot wants exactly the
  night minimum per residential team: zero is understaffed, more than one
  is overstaffed.
*/
package roster

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule labels, as rendered to planners.
const (
	RuleRest          = "rusttijd"
	RuleOverlap       = "overlappende diensten"
	RuleTeamFit       = "team toewijzing"
	RuleWeekendClosed = "weekend gesloten"
	RuleAbsence       = "afwezigheid"
	RuleStaffing      = "minimale bezetting"
	RuleNightStaffing = "nachtbezetting"
	RuleUnknown       = "medewerker niet gevonden"
)

// Issue is one business-rule finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
}

// ValidationResult is the outcome of validating a single shift.
type ValidationResult struct {
	IsValid     bool    `json:"isValid"`
	HasWarnings bool    `json:"hasWarnings"`
	Errors      []Issue `json:"errors"`
	Warnings    []Issue `json:"warnings"`
}

func newResult(errors, warnings []Issue) ValidationResult {
	return ValidationResult{
		IsValid:     len(errors) == 0,
		HasWarnings: len(warnings) > 0,
		Errors:      errors,
		Warnings:    warnings,
	}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator runs the rule pipeline over a roster snapshot.
type Validator struct {
	Settings Settings
	Calendar Calendar
	Data     Dataset
}

// NewValidator builds a Validator over the given snapshot.
func NewValidator(settings Settings, data Dataset) Validator {
	return Validator{Settings: settings, Calendar: NewCalendar(settings), Data: data}
}

// ValidateShift runs all per-shift checks against the candidate. Pass the
// shift's own ID as exclude when revalidating an existing shift in place.
func (v Validator) ValidateShift(shift Shift, exclude ShiftID) ValidationResult {
	var errors, warnings []Issue

	collect := func(e, w []Issue) {
		errors = append(errors, e...)
		warnings = append(warnings, w...)
	}

	collect(v.checkRestPeriod(shift, exclude))
	collect(v.checkOverlap(shift, exclude))
	collect(v.checkTeamFit(shift))
	collect(v.checkWeekendStatus(shift))
	collect(v.checkAbsence(shift))

	return newResult(errors, warnings)
}

// employeeName falls back to the raw ID so messages stay renderable even for
// dangling references.
func (v Validator) employeeName(id EmployeeID) string {
	if e, ok := v.Data.EmployeeByID(id); ok {
		return e.Name
	}
	return string(id)
}

// -----------------------------------------------------------------------------
// Rule 1: rest period
// -----------------------------------------------------------------------------

func (v Validator) checkRestPeriod(shift Shift, exclude ShiftID) (errors, warnings []Issue) {
	minHours := decimal.NewFromInt(int64(v.Settings.Rules.MinHoursBetweenShifts))
	bandTop := minHours.Add(decimal.NewFromInt(1))
	name := v.employeeName(shift.EmployeeID)

	for _, other := range v.Data.ShiftsByEmployee(shift.EmployeeID, exclude) {
		gap := HoursBetween(other, shift)
		switch {
		case gap.LessThan(minHours):
			errors = append(errors, Issue{
				Severity: SeverityError,
				Rule:     RuleRest,
				Message: fmt.Sprintf("%s heeft minder dan %s uur rust tussen diensten (%s uur tussen %s en %s)",
					name, minHours, gap.Round(1), other.Date, shift.Date),
			})
		case gap.LessThan(bandTop):
			warnings = append(warnings, Issue{
				Severity: SeverityWarning,
				Rule:     RuleRest,
				Message: fmt.Sprintf("%s heeft weinig rust tussen diensten (%s uur tussen %s en %s)",
					name, gap.Round(1), other.Date, shift.Date),
			})
		}
	}
	return errors, warnings
}

// -----------------------------------------------------------------------------
// Rule 2: overlapping shifts
// -----------------------------------------------------------------------------

func (v Validator) checkOverlap(shift Shift, exclude ShiftID) (errors, warnings []Issue) {
	name := v.employeeName(shift.EmployeeID)
	for _, other := range v.Data.ShiftsByEmployee(shift.EmployeeID, exclude) {
		if Overlap(other, shift) {
			errors = append(errors, Issue{
				Severity: SeverityError,
				Rule:     RuleOverlap,
				Message: fmt.Sprintf("%s heeft al een dienst op %s van %s tot %s",
					name, other.Date, other.StartTime, other.EndTime),
			})
		}
	}
	return errors, nil
}

// -----------------------------------------------------------------------------
// Rule 3: team fit
// -----------------------------------------------------------------------------

func (v Validator) checkTeamFit(shift Shift) (errors, warnings []Issue) {
	emp, ok := v.Data.EmployeeByID(shift.EmployeeID)
	if !ok {
		return []Issue{{
			Severity: SeverityError,
			Rule:     RuleUnknown,
			Message:  "medewerker bestaat niet in het systeem",
		}}, nil
	}
	if !emp.CanWork(shift.Team) {
		warnings = append(warnings, Issue{
			Severity: SeverityWarning,
			Rule:     RuleTeamFit,
			Message: fmt.Sprintf("%s is niet gekoppeld aan team %s. Hoofdteam: %s",
				emp.Name, v.Settings.TeamName(shift.Team), v.Settings.TeamName(emp.MainTeam)),
		})
	}
	return nil, warnings
}

// -----------------------------------------------------------------------------
// Rule 4: closed weekend boundaries
// -----------------------------------------------------------------------------

// Monday opens at 07:30 after a closed weekend; Friday closes at 18:00 before
// one. These are facility opening hours, advisory only.
var mondayOpening = MustTimeOfDay("07:30")

func (v Validator) checkWeekendStatus(shift Shift) (errors, warnings []Issue) {
	d := shift.Date

	if d.IsWeekend() && !v.Calendar.IsWeekendOpen(d) {
		warnings = append(warnings, Issue{
			Severity: SeverityWarning,
			Rule:     RuleWeekendClosed,
			Message:  fmt.Sprintf("dit weekend (%s) is gesloten volgens het patroon", d),
		})
	}

	switch d.Weekday() {
	case time.Friday: // closed from 18:00 when the upcoming weekend is closed
		if !v.Calendar.IsWeekendOpen(d.AddDays(1)) && shift.StartTime.Hour >= 18 {
			warnings = append(warnings, Issue{
				Severity: SeverityWarning,
				Rule:     RuleWeekendClosed,
				Message:  "vrijdag vanaf 18:00 is gesloten (weekend gesloten patroon)",
			})
		}
	case time.Monday: // closed until 07:30 when the preceding weekend was closed
		if !v.Calendar.IsWeekendOpen(d.AddDays(-2)) && shift.StartTime.Minutes() < mondayOpening.Minutes() {
			warnings = append(warnings, Issue{
				Severity: SeverityWarning,
				Rule:     RuleWeekendClosed,
				Message:  "maandag is gesloten tot 7:30 (weekend gesloten patroon), dienst kan pas starten vanaf 7:30",
			})
		}
	}
	return nil, warnings
}

// -----------------------------------------------------------------------------
// Rule 5: absence conflict
// -----------------------------------------------------------------------------

func (v Validator) checkAbsence(shift Shift) (errors, warnings []Issue) {
	absence, ok := v.Data.AbsenceFor(shift.EmployeeID, shift.Date)
	if !ok || absence.Type == "" {
		return nil, nil
	}
	msg := fmt.Sprintf("%s is afwezig op %s: %s",
		v.employeeName(shift.EmployeeID), shift.Date, absence.Type.Label())
	if absence.Reason != "" {
		msg += fmt.Sprintf(" (%s)", absence.Reason)
	}
	return nil, []Issue{{Severity: SeverityWarning, Rule: RuleAbsence, Message: msg}}
}

// =============================================================================
// Rule 6: minimum staffing (day level)
// =============================================================================

// Coverage checkpoints: a slot is the interval between consecutive hour
// marks; the night slot runs 22:00 into the next morning.
type timeSlot struct {
	start, end int // hours; end may exceed 24 for overnight coverage
}

var daySlots = []timeSlot{{7, 10}, {10, 16}, {16, 19}, {19, 22}}
var nightSlot = timeSlot{22, 31}

// staffingCount counts shifts of a team active during the slot on a date.
// Overnight shifts get an adjusted end hour (end+24) so they count toward the
// night slot of their start date.
func (v Validator) staffingCount(date Date, team TeamID, slot timeSlot) int {
	count := 0
	for _, s := range v.Data.ShiftsOn(date) {
		if s.Team != team {
			continue
		}
		start := s.StartTime.Hour
		end := s.EndTime.Hour
		if end < start {
			end += 24
		}
		if start < slot.end && end > slot.start {
			count++
		}
	}
	return count
}

// StaffingIssues evaluates the coverage checkpoints for one date. Closed
// weekend days carry no staffing requirement.
func (v Validator) StaffingIssues(date Date) []Issue {
	if date.IsWeekend() && !v.Calendar.IsWeekendOpen(date) {
		return nil
	}

	holiday := v.Settings.IsHolidayPeriod(date)
	rules := v.Settings.Rules
	if holiday {
		rules = v.Settings.HolidayRules
	}

	var issues []Issue

	for _, slot := range daySlots {
		if holiday {
			// Vlot 1 + Vlot 2 pool their staff during holiday periods.
			combined := 0
			for _, team := range ResidentialTeams() {
				combined += v.staffingCount(date, team, slot)
			}
			if combined < rules.MinStaffingDay {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Rule:     RuleStaffing,
					Message: fmt.Sprintf("vakantie (Vlot 1+2 samen) %02d:00: %d/%d begeleiders op %s",
						slot.start, combined, rules.MinStaffingDay, date),
				})
			}
			continue
		}
		for _, team := range ResidentialTeams() {
			count := v.staffingCount(date, team, slot)
			if count < rules.MinStaffingDay {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Rule:     RuleStaffing,
					Message: fmt.Sprintf("%s %02d:00: %d/%d begeleiders op %s",
						v.Settings.TeamName(team), slot.start, count, rules.MinStaffingDay, date),
				})
			}
		}
	}

	// Night slot wants exactly the minimum per residential team.
	for _, team := range ResidentialTeams() {
		count := v.staffingCount(date, team, nightSlot)
		if count < rules.MinStaffingNight {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     RuleNightStaffing,
				Message: fmt.Sprintf("%s nacht: geen nachtdienst ingepland op %s",
					v.Settings.TeamName(team), date),
			})
		} else if count > 1 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Rule:     RuleNightStaffing,
				Message: fmt.Sprintf("%s nacht: %d/1 begeleider op %s (te veel)",
					v.Settings.TeamName(team), count, date),
			})
		}
	}

	return issues
}

// =============================================================================
// SUMMARY
// =============================================================================

// DateIssues groups a single date's findings by severity.
type DateIssues struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Summary aggregates validation over a date range.
type Summary struct {
	TotalShifts        int                   `json:"totalShifts"`
	ShiftsWithErrors   int                   `json:"shiftsWithErrors"`
	ShiftsWithWarnings int                   `json:"shiftsWithWarnings"`
	Dates              map[string]DateIssues `json:"dates"`
}

// ValidationSummary revalidates every shift in [start, end] and adds the
// day-level staffing findings per date.
func (v Validator) ValidationSummary(start, end Date) Summary {
	summary := Summary{Dates: map[string]DateIssues{}}

	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		var issues DateIssues

		for _, shift := range v.Data.ShiftsOn(d) {
			summary.TotalShifts++
			result := v.ValidateShift(shift, shift.ID)
			if !result.IsValid {
				summary.ShiftsWithErrors++
				issues.Errors = append(issues.Errors, result.Errors...)
			}
			if result.HasWarnings {
				summary.ShiftsWithWarnings++
				issues.Warnings = append(issues.Warnings, result.Warnings...)
			}
		}

		for _, issue := range v.StaffingIssues(d) {
			if issue.Severity == SeverityError {
				issues.Errors = append(issues.Errors, issue)
			} else {
				issues.Warnings = append(issues.Warnings, issue)
			}
		}

		summary.Dates[d.String()] = issues
	}

	return summary
}
