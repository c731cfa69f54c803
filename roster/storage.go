/*
storage.go - Persistence interface for roster records

PURPOSE:
  Defines the contract between the rule engine's collaborators and the
  database. The engine itself only reads Datasets; the store exists for the
  API layer and the auto-scheduler's writes.

IMPLEMENTATIONS:
  - roster/store/memory.go: In-memory, for tests
  - store/sqlite/sqlite.go:  Production SQLite

SEMANTICS:
  - Deleting an employee cascades to its shifts and absences.
  - Absences upsert on (employee, date): one record per day.
  - Settings persist as a single value; Normalize() on load fills gaps.
*/
package roster

import "context"

// Store persists roster records.
type Store interface {
	ShiftCreator

	// Employees
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)
	CreateEmployee(ctx context.Context, e Employee) (Employee, error)
	UpdateEmployee(ctx context.Context, e Employee) (Employee, error)
	// DeleteEmployee removes the employee and cascades to its shifts and
	// absences.
	DeleteEmployee(ctx context.Context, id EmployeeID) error

	// Shifts
	ListShifts(ctx context.Context) ([]Shift, error)
	ListShiftsInRange(ctx context.Context, from, to Date) ([]Shift, error)
	UpdateShift(ctx context.Context, s Shift) (Shift, error)
	DeleteShift(ctx context.Context, id ShiftID) error
	// DeleteShiftsInRange removes all shifts in [from, to], returning the
	// number deleted.
	DeleteShiftsInRange(ctx context.Context, from, to Date) (int, error)

	// Absences
	ListAbsences(ctx context.Context) ([]Absence, error)
	// UpsertAbsence inserts or replaces the record for (employee, date).
	UpsertAbsence(ctx context.Context, a Absence) (Absence, error)
	DeleteAbsence(ctx context.Context, id EmployeeID, date Date) error

	// Settings
	LoadSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

// LoadDataset assembles the engine's read snapshot from a store.
func LoadDataset(ctx context.Context, store Store) (Dataset, error) {
	employees, err := store.ListEmployees(ctx)
	if err != nil {
		return Dataset{}, err
	}
	shifts, err := store.ListShifts(ctx)
	if err != nil {
		return Dataset{}, err
	}
	absences, err := store.ListAbsences(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Employees: employees, Shifts: shifts, Absences: absences}, nil
}
