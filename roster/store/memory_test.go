package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hetvlot/rooster/roster"
	"github.com/hetvlot/rooster/roster/store"
)

// =============================================================================
// EMPLOYEE TESTS
// =============================================================================

func TestMemory_EmployeeCRUD(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	created, err := m.CreateEmployee(ctx, roster.Employee{Name: "Anna", MainTeam: roster.TeamVlot1, Active: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create should assign an ID")
	}

	got, err := m.GetEmployee(ctx, created.ID)
	if err != nil || got.Name != "Anna" {
		t.Fatalf("get = %v, %v", got, err)
	}

	got.Name = "Anna B."
	if _, err := m.UpdateEmployee(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = m.GetEmployee(ctx, created.ID)
	if got.Name != "Anna B." {
		t.Errorf("name = %s after update", got.Name)
	}

	if _, err := m.GetEmployee(ctx, "emp-ghost"); !errors.Is(err, roster.ErrNotFound) {
		t.Errorf("missing employee: expected ErrNotFound, got %v", err)
	}
}

func TestMemory_DeleteEmployeeCascades(t *testing.T) {
	// GIVEN: an employee with a shift and an absence
	// WHEN: the employee is deleted
	// THEN: the shift and absence go with it
	ctx := context.Background()
	m := store.NewMemory()

	emp, _ := m.CreateEmployee(ctx, roster.Employee{Name: "Anna", Active: true})
	_, err := m.CreateShift(ctx, roster.Shift{
		EmployeeID: emp.ID, Team: roster.TeamVlot1,
		Date:      roster.MustDate("2025-03-10"),
		StartTime: roster.MustTimeOfDay("07:30"), EndTime: roster.MustTimeOfDay("16:00"),
	})
	if err != nil {
		t.Fatalf("create shift failed: %v", err)
	}
	if _, err := m.UpsertAbsence(ctx, roster.Absence{
		EmployeeID: emp.ID, Date: roster.MustDate("2025-03-11"), Type: roster.AbsenceVerlof,
	}); err != nil {
		t.Fatalf("upsert absence failed: %v", err)
	}

	if err := m.DeleteEmployee(ctx, emp.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	shifts, _ := m.ListShifts(ctx)
	absences, _ := m.ListAbsences(ctx)
	if len(shifts) != 0 || len(absences) != 0 {
		t.Errorf("cascade left %d shifts, %d absences", len(shifts), len(absences))
	}
}

// =============================================================================
// SHIFT TESTS
// =============================================================================

func TestMemory_ShiftsSortedAndRanged(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	days := []string{"2025-03-12", "2025-03-10", "2025-03-11"}
	for _, d := range days {
		if _, err := m.CreateShift(ctx, roster.Shift{
			EmployeeID: "emp-anna", Team: roster.TeamVlot1, Date: roster.MustDate(d),
			StartTime: roster.MustTimeOfDay("09:00"), EndTime: roster.MustTimeOfDay("17:00"),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, _ := m.ListShifts(ctx)
	if len(all) != 3 || !all[0].Date.Equal(roster.MustDate("2025-03-10")) {
		t.Errorf("ListShifts not sorted by date: %v", all)
	}

	ranged, _ := m.ListShiftsInRange(ctx, roster.MustDate("2025-03-11"), roster.MustDate("2025-03-12"))
	if len(ranged) != 2 {
		t.Errorf("range query = %d shifts, expected 2", len(ranged))
	}

	deleted, _ := m.DeleteShiftsInRange(ctx, roster.MustDate("2025-03-10"), roster.MustDate("2025-03-11"))
	if deleted != 2 {
		t.Errorf("bulk delete removed %d, expected 2", deleted)
	}
	left, _ := m.ListShifts(ctx)
	if len(left) != 1 {
		t.Errorf("shifts left = %d, expected 1", len(left))
	}
}

// =============================================================================
// ABSENCE TESTS
// =============================================================================

func TestMemory_AbsenceUpsertReplacesSameDay(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	first, _ := m.UpsertAbsence(ctx, roster.Absence{
		EmployeeID: "emp-anna", Date: roster.MustDate("2025-03-10"), Type: roster.AbsenceVerlof,
	})
	second, _ := m.UpsertAbsence(ctx, roster.Absence{
		EmployeeID: "emp-anna", Date: roster.MustDate("2025-03-10"), Type: roster.AbsenceZiek,
	})

	if first.ID != second.ID {
		t.Errorf("upsert should keep the record ID: %s vs %s", first.ID, second.ID)
	}
	all, _ := m.ListAbsences(ctx)
	if len(all) != 1 || all[0].Type != roster.AbsenceZiek {
		t.Errorf("absences = %v, expected one ziek record", all)
	}

	if err := m.DeleteAbsence(ctx, "emp-anna", roster.MustDate("2025-03-10")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	all, _ = m.ListAbsences(ctx)
	if len(all) != 0 {
		t.Errorf("absences left = %d", len(all))
	}
}

// =============================================================================
// SETTINGS TESTS
// =============================================================================

func TestMemory_SettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	s, err := m.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	s.Rules.MinHoursBetweenShifts = 12
	if err := m.SaveSettings(ctx, s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	s, _ = m.LoadSettings(ctx)
	if s.Rules.MinHoursBetweenShifts != 12 {
		t.Errorf("rest minimum = %d after round trip", s.Rules.MinHoursBetweenShifts)
	}
}
