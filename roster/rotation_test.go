package roster_test

import (
	"testing"

	"github.com/hetvlot/rooster/roster"
)

// Rotation fixture: three eligible caretakers, rotation anchored on the
// reference Monday (Week 1, closed weekend) with Anna first.
func rotationFixture() (roster.Settings, roster.Dataset) {
	settings := roster.DefaultSettings()
	settings.Rotation.RotationStart = roster.MustDate("2025-01-06")
	settings.Rotation.RotationStartEmployee = "emp-anna"

	data := roster.Dataset{Employees: []roster.Employee{
		{ID: "emp-anna", Name: "Anna", MainTeam: roster.TeamVlot1, Active: true},
		{ID: "emp-bert", Name: "Bert", MainTeam: roster.TeamVlot2, Active: true},
		{ID: "emp-chris", Name: "Chris", MainTeam: roster.TeamCargo, Active: true},
		{ID: "emp-dirk", Name: "Dirk", MainTeam: roster.TeamOverkoepelend, Active: true}, // not eligible
		{ID: "emp-els", Name: "Els", MainTeam: roster.TeamVlot1, Active: false},          // inactive
	}}
	return settings, data
}

// =============================================================================
// POOL TESTS
// =============================================================================

func TestEligiblePool(t *testing.T) {
	settings, data := rotationFixture()
	pool := roster.NewRotation(settings, data).EligiblePool()

	if len(pool) != 3 {
		t.Fatalf("pool size = %d, expected 3", len(pool))
	}
	// Sorted by name: Anna, Bert, Chris.
	for i, name := range []string{"Anna", "Bert", "Chris"} {
		if pool[i].Name != name {
			t.Errorf("pool[%d] = %s, expected %s", i, pool[i].Name, name)
		}
	}
}

// =============================================================================
// QUALIFYING WEEK TESTS
// =============================================================================

func TestIsWeekendOrHolidayWeek(t *testing.T) {
	settings, data := rotationFixture()
	settings.HolidayPeriods = []roster.HolidayPeriod{{
		ID: "kerst", Name: "Kerstvakantie",
		StartDate: roster.MustDate("2025-12-22"),
		EndDate:   roster.MustDate("2026-01-04"),
	}}
	rot := roster.NewRotation(settings, data)

	// Week 1: closed weekend, no holiday.
	if rot.IsWeekendOrHolidayWeek(roster.MustDate("2025-01-06")) {
		t.Error("closed non-holiday week should not qualify")
	}
	// Week 2: open weekend.
	if !rot.IsWeekendOrHolidayWeek(roster.MustDate("2025-01-13")) {
		t.Error("open-weekend week should qualify")
	}
	// Closed-weekend week touching the holiday period qualifies anyway.
	if !rot.IsWeekendOrHolidayWeek(roster.MustDate("2025-12-22")) {
		t.Error("holiday week should qualify regardless of parity")
	}
}

// =============================================================================
// ROUND-ROBIN TESTS
// =============================================================================

func TestResponsibleFor_RoundRobinOverQualifyingWeeks(t *testing.T) {
	// GIVEN: rotation anchored 2025-01-06 (Week 1, not qualifying) with Anna
	// WHEN: walking forward week by week
	// THEN: only qualifying weeks advance the pointer
	settings, data := rotationFixture()
	rot := roster.NewRotation(settings, data)

	expectations := []struct {
		monday string
		name   string
	}{
		{"2025-01-06", "Anna"}, // Week 1: 0 qualifying weeks before it
		{"2025-01-13", "Anna"}, // Week 2: still 0 before it
		{"2025-01-20", "Bert"}, // the 01-13 week advanced the rotation
		{"2025-01-27", "Bert"},
		{"2025-02-03", "Chris"},
		{"2025-02-17", "Anna"}, // wrapped around the pool of three
	}
	for _, e := range expectations {
		emp, ok := rot.ResponsibleFor(roster.MustDate(e.monday))
		if !ok {
			t.Fatalf("ResponsibleFor(%s): no responsible", e.monday)
		}
		if emp.Name != e.name {
			t.Errorf("ResponsibleFor(%s) = %s, expected %s", e.monday, emp.Name, e.name)
		}
	}
}

func TestResponsibleFor_BeforeStartIsNone(t *testing.T) {
	settings, data := rotationFixture()
	rot := roster.NewRotation(settings, data)
	if _, ok := rot.ResponsibleFor(roster.MustDate("2024-12-30")); ok {
		t.Error("weeks before the rotation start have no responsible")
	}
}

func TestResponsibleFor_UnconfiguredIsNone(t *testing.T) {
	settings, data := rotationFixture()
	settings.Rotation.RotationStart = roster.Date{}
	rot := roster.NewRotation(settings, data)
	if _, ok := rot.ResponsibleFor(roster.MustDate("2025-01-13")); ok {
		t.Error("unanchored rotation should yield no responsible")
	}
}

func TestResponsibleFor_StartEmployeeOffsetsPool(t *testing.T) {
	// Anchoring on Bert shifts the whole sequence by one.
	settings, data := rotationFixture()
	settings.Rotation.RotationStartEmployee = "emp-bert"
	rot := roster.NewRotation(settings, data)

	emp, ok := rot.ResponsibleFor(roster.MustDate("2025-01-13"))
	if !ok || emp.Name != "Bert" {
		t.Errorf("first qualifying week = %v, expected Bert", emp.Name)
	}
	emp, _ = rot.ResponsibleFor(roster.MustDate("2025-01-20"))
	if emp.Name != "Chris" {
		t.Errorf("after one qualifying week = %s, expected Chris", emp.Name)
	}
}

// =============================================================================
// MANUAL ASSIGNMENT TESTS
// =============================================================================

func TestResponsibleFor_ManualAssignmentWins(t *testing.T) {
	settings, data := rotationFixture()
	settings.Rotation.Assignments["2025-01-20"] = "emp-chris"
	rot := roster.NewRotation(settings, data)

	emp, ok := rot.ResponsibleFor(roster.MustDate("2025-01-20"))
	if !ok || emp.Name != "Chris" {
		t.Errorf("manual assignment should win, got %s", emp.Name)
	}

	// Pinning one week does not disturb the computed sequence elsewhere.
	emp, _ = rot.ResponsibleFor(roster.MustDate("2025-02-03"))
	if emp.Name != "Chris" {
		t.Errorf("2025-02-03 = %s, expected Chris (unchanged rotation)", emp.Name)
	}
}

func TestResponsibleFor_MidWeekDateNormalizesToMonday(t *testing.T) {
	settings, data := rotationFixture()
	rot := roster.NewRotation(settings, data)

	monday, _ := rot.ResponsibleFor(roster.MustDate("2025-01-20"))
	thursday, _ := rot.ResponsibleFor(roster.MustDate("2025-01-23"))
	if monday.ID != thursday.ID {
		t.Errorf("mid-week lookup diverged: %s vs %s", monday.Name, thursday.Name)
	}
}
