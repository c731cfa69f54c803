package roster_test

import (
	"testing"

	"github.com/hetvlot/rooster/roster"
)

// =============================================================================
// NORMALIZE TESTS
// =============================================================================

func TestNormalize_EmptyYieldsDefaults(t *testing.T) {
	s := roster.Settings{}.Normalize()
	def := roster.DefaultSettings()

	if !s.BiWeeklyReferenceDate.Equal(def.BiWeeklyReferenceDate) {
		t.Errorf("reference date = %s", s.BiWeeklyReferenceDate)
	}
	if s.Rules.MinHoursBetweenShifts != 11 {
		t.Errorf("MinHoursBetweenShifts = %d, expected 11", s.Rules.MinHoursBetweenShifts)
	}
	if s.HolidayRules.MinStaffingDay != 2 {
		t.Errorf("holiday MinStaffingDay = %d, expected 2", s.HolidayRules.MinStaffingDay)
	}
	if len(s.Teams) != 5 {
		t.Errorf("teams = %d, expected 5", len(s.Teams))
	}
	if s.Rotation.Assignments == nil {
		t.Error("assignments map should be initialized")
	}
}

func TestNormalize_PreservesStoredValues(t *testing.T) {
	// GIVEN: a partial stored record with a custom rest minimum
	// THEN: the custom value survives and the gaps are filled
	s := roster.Settings{
		Rules: roster.StaffingRules{MinHoursBetweenShifts: 12, MinStaffingDay: 2, MinStaffingNight: 1},
	}.Normalize()

	if s.Rules.MinHoursBetweenShifts != 12 {
		t.Errorf("custom rest minimum overwritten: %d", s.Rules.MinHoursBetweenShifts)
	}
	if s.BiWeeklyReferenceDate.IsZero() {
		t.Error("reference date should be backfilled")
	}
}

func TestNormalize_MergesMissingTeams(t *testing.T) {
	s := roster.Settings{
		Teams: map[roster.TeamID]roster.Team{
			roster.TeamVlot1: {Name: "Aangepast Vlot 1", Color: "#000000"},
		},
	}.Normalize()

	if s.Teams[roster.TeamVlot1].Name != "Aangepast Vlot 1" {
		t.Error("stored team display should survive the merge")
	}
	if _, ok := s.Teams[roster.TeamCargo]; !ok {
		t.Error("missing teams should be backfilled from defaults")
	}
}

// =============================================================================
// HOLIDAY PERIOD TESTS
// =============================================================================

func TestHolidayPeriodFor(t *testing.T) {
	s := roster.DefaultSettings()
	s.HolidayPeriods = []roster.HolidayPeriod{
		{ID: "paas", Name: "Paasvakantie", StartDate: roster.MustDate("2025-04-07"), EndDate: roster.MustDate("2025-04-21")},
		{ID: "zomer", Name: "Zomervakantie", StartDate: roster.MustDate("2025-07-01"), EndDate: roster.MustDate("2025-08-31")},
	}

	period, ok := s.HolidayPeriodFor(roster.MustDate("2025-04-07"))
	if !ok || period.ID != "paas" {
		t.Errorf("2025-04-07 should fall in paas, got %v", period.ID)
	}
	// Inclusive end.
	if _, ok := s.HolidayPeriodFor(roster.MustDate("2025-04-21")); !ok {
		t.Error("end date should be inside the period")
	}
	if _, ok := s.HolidayPeriodFor(roster.MustDate("2025-04-22")); ok {
		t.Error("day after the period should be outside")
	}
	if !s.IsHolidayPeriod(roster.MustDate("2025-08-15")) {
		t.Error("2025-08-15 should be a holiday")
	}
}
