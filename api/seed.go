/*
seed.go - Demo data loader

PURPOSE:
  Populates the store with a realistic two-week roster for demos and manual
  testing: a handful of caretakers across the teams, an anchored responsible
  rotation, a summer holiday period, and shifts covering the reference week.

USAGE VIA API:
  POST /api/seed

NOTE:
  Seeding does not clear existing data; run it against a fresh database.
  Only use in development/demo environments.
*/
package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/hetvlot/rooster/roster"
)

// SeedDemo loads the demo roster into the store.
func SeedDemo(ctx context.Context, s roster.Store) error {
	employees := []roster.Employee{
		{ID: "emp-anna", Name: "Anna Peeters", Email: "anna@hetvlot.be",
			MainTeam: roster.TeamVlot1, ContractHours: decimal.NewFromInt(38), Active: true,
			Week1: roster.WeekSchedule{
				{DayOfWeek: 1, Enabled: true, StartTime: roster.MustTimeOfDay("07:30"), EndTime: roster.MustTimeOfDay("16:00")},
				{DayOfWeek: 2, Enabled: true, StartTime: roster.MustTimeOfDay("07:30"), EndTime: roster.MustTimeOfDay("16:00")},
				{DayOfWeek: 3, Enabled: true, StartTime: roster.MustTimeOfDay("07:30"), EndTime: roster.MustTimeOfDay("16:00")},
			}},
		{ID: "emp-bert", Name: "Bert Claes", Email: "bert@hetvlot.be",
			MainTeam: roster.TeamVlot1, ContractHours: decimal.NewFromInt(36), Active: true},
		{ID: "emp-carla", Name: "Carla Wouters", Email: "carla@hetvlot.be",
			MainTeam: roster.TeamVlot2, ContractHours: decimal.NewFromInt(38), Active: true},
		{ID: "emp-dries", Name: "Dries Maes", Email: "dries@hetvlot.be",
			MainTeam: roster.TeamVlot2, ExtraTeams: []roster.TeamID{roster.TeamVlot1},
			ContractHours: decimal.NewFromInt(32), Active: true},
		{ID: "emp-els", Name: "Els Jacobs", Email: "els@hetvlot.be",
			MainTeam: roster.TeamCargo, ContractHours: decimal.NewFromInt(38), Active: true},
		{ID: "emp-frank", Name: "Frank De Smet", Email: "frank@hetvlot.be",
			MainTeam: roster.TeamOverkoepelend, ContractHours: decimal.NewFromInt(40), Active: true},
	}
	for _, e := range employees {
		if _, err := s.CreateEmployee(ctx, e); err != nil {
			return err
		}
	}

	// Reference week: Vlot 1 staffed around the clock, Vlot 2 only during the
	// day, so the validation summary has real findings to show.
	type entry struct {
		emp        roster.EmployeeID
		team       roster.TeamID
		date       string
		start, end string
	}
	var entries []entry
	for i := 0; i < 5; i++ {
		date := roster.MustDate("2025-01-06").AddDays(i).String()
		entries = append(entries,
			entry{"emp-anna", roster.TeamVlot1, date, "07:00", "16:00"},
			entry{"emp-bert", roster.TeamVlot1, date, "15:00", "22:30"},
			entry{"emp-dries", roster.TeamVlot1, date, "22:30", "07:00"},
			entry{"emp-carla", roster.TeamVlot2, date, "07:00", "16:00"},
		)
	}
	for _, e := range entries {
		if _, err := s.CreateShift(ctx, roster.Shift{
			EmployeeID: e.emp, Team: e.team,
			Date:      roster.MustDate(e.date),
			StartTime: roster.MustTimeOfDay(e.start),
			EndTime:   roster.MustTimeOfDay(e.end),
		}); err != nil {
			return err
		}
	}

	if _, err := s.UpsertAbsence(ctx, roster.Absence{
		EmployeeID: "emp-els", Date: roster.MustDate("2025-01-08"),
		Type: roster.AbsenceVorming, Reason: "EHBO-opleiding",
	}); err != nil {
		return err
	}

	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return err
	}
	settings.HolidayPeriods = []roster.HolidayPeriod{{
		ID: "zomer-2025", Name: "Zomervakantie",
		StartDate: roster.MustDate("2025-07-01"),
		EndDate:   roster.MustDate("2025-08-31"),
	}}
	settings.Rotation.RotationStart = roster.MustDate("2025-01-06")
	settings.Rotation.RotationStartEmployee = "emp-anna"
	return s.SaveSettings(ctx, settings)
}

// Seed handles POST /api/seed.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := SeedDemo(r.Context(), h.Store); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to seed demo data", err)
		return
	}
	h.Logger.Info("demo data seeded")
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
