/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  domain model. Request types carry validate tags; input shape is checked
  at this boundary so the engine only ever sees well-formed data.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - Responses reuse the roster types directly where their JSON shape is
    already the wire contract (Employee, Shift, ValidationResult, ...)
*/
package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hetvlot/rooster/roster"
)

// EmployeeRequest is the request body to create or update an employee.
type EmployeeRequest struct {
	Name          string               `json:"name" validate:"required"`
	Email         string               `json:"email" validate:"omitempty,email"`
	MainTeam      string               `json:"mainTeam"`
	ExtraTeams    []string             `json:"extraTeams"`
	ContractHours float64              `json:"contractHours" validate:"gte=0"`
	Active        *bool                `json:"active"`
	Week1         []roster.DaySchedule `json:"weekScheduleWeek1" validate:"dive"`
	Week2         []roster.DaySchedule `json:"weekScheduleWeek2" validate:"dive"`
}

func (r EmployeeRequest) toEmployee(id roster.EmployeeID) roster.Employee {
	extra := make([]roster.TeamID, len(r.ExtraTeams))
	for i, t := range r.ExtraTeams {
		extra[i] = roster.TeamID(t)
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return roster.Employee{
		ID:            id,
		Name:          r.Name,
		Email:         r.Email,
		MainTeam:      roster.TeamID(r.MainTeam),
		ExtraTeams:    extra,
		ContractHours: decimal.NewFromFloat(r.ContractHours),
		Active:        active,
		Week1:         r.Week1,
		Week2:         r.Week2,
	}
}

// ShiftRequest is the request body to create or update a shift, and doubles
// as the candidate payload for /validate.
type ShiftRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Team       string `json:"team"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	Notes      string `json:"notes"`

	// ExcludeShiftID allows revalidating an existing shift in place.
	ExcludeShiftID string `json:"excludeShiftId"`
}

func (r ShiftRequest) toShift(id roster.ShiftID) (roster.Shift, error) {
	date, err := roster.ParseDate(r.Date)
	if err != nil {
		return roster.Shift{}, err
	}
	start, err := roster.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return roster.Shift{}, fmt.Errorf("startTime: %w", err)
	}
	end, err := roster.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return roster.Shift{}, fmt.Errorf("endTime: %w", err)
	}
	return roster.Shift{
		ID:         id,
		EmployeeID: roster.EmployeeID(r.EmployeeID),
		Team:       roster.TeamID(r.Team),
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Notes:      r.Notes,
	}, nil
}

// AbsenceRequest is the upsert body for an availability record.
type AbsenceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=verlof ziek overuren vorming andere"`
	Reason     string `json:"reason"`
}

// ApplyScheduleRequest triggers the auto-scheduler. Empty EmployeeID means
// all active employees.
type ApplyScheduleRequest struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
}

// RotationAssignmentRequest pins a manual responsible for a week.
type RotationAssignmentRequest struct {
	Monday     string `json:"monday" validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
}

// RotationStartRequest anchors the rotation.
type RotationStartRequest struct {
	StartDate  string `json:"startDate" validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
}

// WeeklyOvertimeRequest carries credited minutes keyed by date.
type WeeklyOvertimeRequest struct {
	CreditedMinutesByDate  map[string]int `json:"creditedMinutesByDate" validate:"required"`
	ContractMinutesPerWeek int            `json:"contractMinutesPerWeek" validate:"gte=0"`
}

// ResponsibleResponse reports the duty-of-record for a week.
type ResponsibleResponse struct {
	Monday                string           `json:"monday"`
	IsWeekendOrHolidayWeek bool            `json:"isWeekendOrHolidayWeek"`
	Responsible           *roster.Employee `json:"responsible"`
	Source                string           `json:"source"` // "manual", "rotation" or "none"
}

// WeekContextResponse describes one week of the bi-weekly pattern.
type WeekContextResponse struct {
	Monday        string                `json:"monday"`
	WeekParity    int                   `json:"weekParity"`
	ISOWeek       int                   `json:"isoWeek"`
	WeekendOpen   bool                  `json:"weekendOpen"`
	HolidayPeriod *roster.HolidayPeriod `json:"holidayPeriod"`
	Responsible   *roster.Employee      `json:"responsible"`
}

type errorResponse struct {
	Error string `json:"error"`
}
