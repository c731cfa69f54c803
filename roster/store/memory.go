// Package store provides Store implementations.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hetvlot/rooster/roster"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees map[roster.EmployeeID]roster.Employee
	shifts    map[roster.ShiftID]roster.Shift
	absences  map[absenceKey]roster.Absence
	settings  roster.Settings
}

type absenceKey struct {
	EmployeeID roster.EmployeeID
	Date       string
}

var _ roster.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		employees: make(map[roster.EmployeeID]roster.Employee),
		shifts:    make(map[roster.ShiftID]roster.Shift),
		absences:  make(map[absenceKey]roster.Absence),
		settings:  roster.DefaultSettings(),
	}
}

// -----------------------------------------------------------------------------
// Employees
// -----------------------------------------------------------------------------

func (m *Memory) ListEmployees(_ context.Context) ([]roster.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetEmployee(_ context.Context, id roster.EmployeeID) (roster.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.employees[id]
	if !ok {
		return roster.Employee{}, fmt.Errorf("%w: employee %s", roster.ErrNotFound, id)
	}
	return e, nil
}

func (m *Memory) CreateEmployee(_ context.Context, e roster.Employee) (roster.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = roster.EmployeeID(uuid.NewString())
	}
	m.employees[e.ID] = e
	return e, nil
}

func (m *Memory) UpdateEmployee(_ context.Context, e roster.Employee) (roster.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[e.ID]; !ok {
		return roster.Employee{}, fmt.Errorf("%w: employee %s", roster.ErrNotFound, e.ID)
	}
	m.employees[e.ID] = e
	return e, nil
}

func (m *Memory) DeleteEmployee(_ context.Context, id roster.EmployeeID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.employees, id)
	for sid, s := range m.shifts {
		if s.EmployeeID == id {
			delete(m.shifts, sid)
		}
	}
	for k := range m.absences {
		if k.EmployeeID == id {
			delete(m.absences, k)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Shifts
// -----------------------------------------------------------------------------

func (m *Memory) ListShifts(_ context.Context) ([]roster.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		out = append(out, s)
	}
	sortShifts(out)
	return out, nil
}

func (m *Memory) ListShiftsInRange(_ context.Context, from, to roster.Date) ([]roster.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []roster.Shift
	for _, s := range m.shifts {
		if s.Date.AfterOrEqual(from) && s.Date.BeforeOrEqual(to) {
			out = append(out, s)
		}
	}
	sortShifts(out)
	return out, nil
}

func (m *Memory) CreateShift(_ context.Context, s roster.Shift) (roster.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = roster.ShiftID(uuid.NewString())
	}
	m.shifts[s.ID] = s
	return s, nil
}

func (m *Memory) UpdateShift(_ context.Context, s roster.Shift) (roster.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shifts[s.ID]; !ok {
		return roster.Shift{}, fmt.Errorf("%w: shift %s", roster.ErrNotFound, s.ID)
	}
	m.shifts[s.ID] = s
	return s, nil
}

func (m *Memory) DeleteShift(_ context.Context, id roster.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.shifts, id)
	return nil
}

func (m *Memory) DeleteShiftsInRange(_ context.Context, from, to roster.Date) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := 0
	for id, s := range m.shifts {
		if s.Date.AfterOrEqual(from) && s.Date.BeforeOrEqual(to) {
			delete(m.shifts, id)
			deleted++
		}
	}
	return deleted, nil
}

// -----------------------------------------------------------------------------
// Absences
// -----------------------------------------------------------------------------

func (m *Memory) ListAbsences(_ context.Context) ([]roster.Absence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]roster.Absence, 0, len(m.absences))
	for _, a := range m.absences {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) UpsertAbsence(_ context.Context, a roster.Absence) (roster.Absence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := absenceKey{EmployeeID: a.EmployeeID, Date: a.Date.String()}
	if existing, ok := m.absences[k]; ok {
		a.ID = existing.ID
	} else if a.ID == "" {
		a.ID = roster.AbsenceID(uuid.NewString())
	}
	m.absences[k] = a
	return a, nil
}

func (m *Memory) DeleteAbsence(_ context.Context, id roster.EmployeeID, date roster.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.absences, absenceKey{EmployeeID: id, Date: date.String()})
	return nil
}

// -----------------------------------------------------------------------------
// Settings
// -----------------------------------------------------------------------------

func (m *Memory) LoadSettings(_ context.Context) (roster.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.Normalize(), nil
}

func (m *Memory) SaveSettings(_ context.Context, s roster.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

func sortShifts(shifts []roster.Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].StartTime.Minutes() < shifts[j].StartTime.Minutes()
	})
}
