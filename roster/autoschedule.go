/*
autoschedule.go - Fixed week-template materialization

PURPOSE:
  Applies an employee's bi-weekly templates to a date range: for each day
  without an existing shift or a typed absence, the enabled template entry
  for that weekday (from the Week 1 or Week 2 schedule, chosen by parity)
  is materialized into a real shift and persisted.

BY CONSTRUCTION:
  Occupied and absent days are skipped, so generated shifts can never
  overlap the employee's existing shifts or conflict with recorded
  absences.
*/
package roster

import (
	"context"
	"fmt"
)

// ShiftCreator is the single write dependency of the auto-scheduler.
// Implementations assign the shift its ID.
type ShiftCreator interface {
	CreateShift(ctx context.Context, shift Shift) (Shift, error)
}

// AutoScheduler materializes week templates into shifts.
type AutoScheduler struct {
	Settings Settings
	Calendar Calendar
}

// NewAutoScheduler builds an AutoScheduler from settings.
func NewAutoScheduler(settings Settings) AutoScheduler {
	return AutoScheduler{Settings: settings, Calendar: NewCalendar(settings)}
}

// ApplyWeekSchedule applies one employee's templates over [from, to] and
// returns the shifts created. Days with an existing shift or a typed absence
// are skipped.
func (a AutoScheduler) ApplyWeekSchedule(ctx context.Context, data Dataset, store ShiftCreator, employeeID EmployeeID, from, to Date) ([]Shift, error) {
	emp, ok := data.EmployeeByID(employeeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, employeeID)
	}
	if len(emp.Week1) == 0 && len(emp.Week2) == 0 {
		return nil, nil
	}

	var created []Shift
	for d := from; d.BeforeOrEqual(to); d = d.AddDays(1) {
		if len(data.ShiftsByEmployeeInRange(employeeID, d, d)) > 0 {
			continue
		}
		if absence, ok := data.AbsenceFor(employeeID, d); ok && absence.Type != "" {
			continue
		}

		parity := a.Calendar.WeekParity(d)
		schedule := emp.Week1
		if parity == 2 {
			schedule = emp.Week2
		}

		entry, ok := schedule.ForDay(int(d.Weekday()))
		if !ok {
			continue
		}

		team := entry.Team
		if team == "" {
			team = emp.MainTeam
		}

		shift, err := store.CreateShift(ctx, Shift{
			EmployeeID: employeeID,
			Team:       team,
			Date:       d,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
			Notes:      fmt.Sprintf("Automatisch ingepland via weekrooster (Week %d)", parity),
		})
		if err != nil {
			return created, fmt.Errorf("create shift for %s on %s: %w", employeeID, d, err)
		}
		created = append(created, shift)
	}
	return created, nil
}

// ApplyWeekScheduleAll runs ApplyWeekSchedule for every active employee and
// returns all created shifts.
func (a AutoScheduler) ApplyWeekScheduleAll(ctx context.Context, data Dataset, store ShiftCreator, from, to Date) ([]Shift, error) {
	var created []Shift
	for _, emp := range data.ActiveEmployees() {
		shifts, err := a.ApplyWeekSchedule(ctx, data, store, emp.ID, from, to)
		if err != nil {
			return created, err
		}
		created = append(created, shifts...)
	}
	return created, nil
}
