/*
calendar.go - Bi-weekly calendar model

PURPOSE:
  Computes week parity (Week 1/Week 2) against the configured reference
  Monday, ISO-8601 week numbers, and whether a given weekend is open or
  closed. The facility alternates: Week 1 weekends are closed (Friday 18:00
  through Monday 07:30), Week 2 weekends are open.

PARITY:
  Parity is the whole-week distance between the Mondays of the target date
  and the reference date, mod 2. Even distance = Week 1, odd = Week 2. The
  reference Monday itself is always Week 1, and parity is constant across a
  calendar week.

WEEKEND JUDGMENT:
  A "weekend" spans Friday evening through Monday morning and must be judged
  as one unit, so Friday looks ahead to its Saturday and Monday looks back to
  the preceding Saturday. Tuesday through Thursday are always open.
*/
package roster

import "time"

// Calendar answers bi-weekly pattern questions for a fixed reference Monday.
type Calendar struct {
	Reference Date // the Monday anchoring Week 1
}

// NewCalendar builds a Calendar from settings.
func NewCalendar(settings Settings) Calendar {
	return Calendar{Reference: settings.BiWeeklyReferenceDate}
}

// WeekParity returns 1 or 2 for the week containing the date.
func (c Calendar) WeekParity(d Date) int {
	refMonday := c.Reference.MondayOf()
	monday := d.MondayOf()
	weeks := refMonday.DaysUntil(monday) / 7
	if weeks%2 == 0 {
		return 1
	}
	return 2
}

// ISOWeekNumber returns the ISO-8601 week number (Thursday-anchored),
// independent of the bi-weekly reference.
func ISOWeekNumber(d Date) int {
	_, week := d.t.ISOWeek()
	return week
}

// IsWeekendOpen reports whether the weekend the date belongs to is open.
// Tue-Thu are always open. Fri is judged by the upcoming Saturday, Mon by the
// preceding Saturday, Sat/Sun by themselves: open iff that Saturday falls in
// a Week 2.
func (c Calendar) IsWeekendOpen(d Date) bool {
	switch d.Weekday() {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return true
	case time.Friday:
		d = d.AddDays(1)
	case time.Monday:
		d = d.AddDays(-2)
	}
	return c.WeekParity(d) == 2
}

// WeekDates returns the seven dates of the week containing d, Monday first.
func WeekDates(d Date) []Date {
	monday := d.MondayOf()
	dates := make([]Date, 7)
	for i := range dates {
		dates[i] = monday.AddDays(i)
	}
	return dates
}
