/*
settings.go - Process-wide scheduling configuration

PURPOSE:
  Settings is the explicit configuration value threaded through the rule
  engine. The original system kept this as ambient mutable state; here every
  engine component receives the Settings it needs, keeping the engine pure
  and testable.

KEY CONCEPTS:
  - BiWeeklyReferenceDate: the Monday anchoring Week 1 parity
  - Rules / HolidayRules: rest-period and staffing minimums
  - HolidayPeriods: inclusive date intervals with relaxed staffing
  - Rotation: responsible-rotation configuration incl. manual overrides
  - Teams / ShiftTemplates: display configuration consumed by the UI
*/
package roster

// StaffingRules holds the rest-period and staffing minimums.
type StaffingRules struct {
	MinHoursBetweenShifts int `json:"minHoursBetweenShifts"`
	MinStaffingDay        int `json:"minStaffingDay"`
	MinStaffingNight      int `json:"minStaffingNight"`
}

// HolidayPeriod is an inclusive [Start, End] interval during which holiday
// staffing rules apply.
type HolidayPeriod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

// Contains reports whether the date falls inside the period (inclusive).
func (p HolidayPeriod) Contains(d Date) bool {
	return d.AfterOrEqual(p.StartDate) && d.BeforeOrEqual(p.EndDate)
}

// RotationConfig configures the weekend/holiday responsible rotation.
// Assignments maps a week's Monday (YYYY-MM-DD) to a manually pinned
// employee; manual always wins over the computed rotation.
type RotationConfig struct {
	EligibleTeams         []TeamID              `json:"eligibleTeams"`
	Assignments           map[string]EmployeeID `json:"assignments"`
	RotationStart         Date                  `json:"rotationStart"`
	RotationStartEmployee EmployeeID            `json:"rotationStartEmployee"`
}

// ShiftTemplate is a quick-fill preset. Consumed by the UI, never altered by
// the engine.
type ShiftTemplate struct {
	Name  string    `json:"name"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Settings is the complete scheduling configuration, loaded once per session
// and passed explicitly to the engine components that need it.
type Settings struct {
	BiWeeklyReferenceDate Date                     `json:"biWeeklyReferenceDate"`
	Rules                 StaffingRules            `json:"rules"`
	HolidayRules          StaffingRules            `json:"holidayRules"`
	HolidayPeriods        []HolidayPeriod          `json:"holidayPeriods"`
	Rotation              RotationConfig           `json:"responsibleRotation"`
	Teams                 map[TeamID]Team          `json:"teams"`
	ShiftTemplates        map[string]ShiftTemplate `json:"shiftTemplates"`
}

// DefaultSettings returns the stock Het Vlot configuration: reference Monday
// 2025-01-06 (Week 1, weekend closed), the 11-hour rest rule, and the five
// standard teams.
func DefaultSettings() Settings {
	return Settings{
		BiWeeklyReferenceDate: MustDate("2025-01-06"),
		Rules: StaffingRules{
			MinHoursBetweenShifts: 11,
			MinStaffingDay:        1,
			MinStaffingNight:      1,
		},
		HolidayRules: StaffingRules{
			MinStaffingDay:   2,
			MinStaffingNight: 1,
		},
		HolidayPeriods: nil,
		Rotation: RotationConfig{
			EligibleTeams: []TeamID{TeamVlot1, TeamVlot2, TeamCargo},
			Assignments:   map[string]EmployeeID{},
		},
		Teams: map[TeamID]Team{
			TeamVlot1:         {Name: "Vlot 1 (Begeleiding)", Color: "#3b82f6"},
			TeamVlot2:         {Name: "Vlot 2 (Begeleiding)", Color: "#8b5cf6"},
			TeamCargo:         {Name: "Cargo (Dagbesteding)", Color: "#10b981"},
			TeamOverkoepelend: {Name: "Overkoepelend (Kantoor)", Color: "#f59e0b"},
			TeamJobstudent:    {Name: "Jobstudenten/Stagiairs", Color: "#ec4899"},
		},
		ShiftTemplates: map[string]ShiftTemplate{
			"vroeg": {Name: "Vroege dienst", Start: MustTimeOfDay("07:30"), End: MustTimeOfDay("16:00")},
			"laat":  {Name: "Late dienst", Start: MustTimeOfDay("16:00"), End: MustTimeOfDay("23:00")},
			"nacht": {Name: "Nachtdienst", Start: MustTimeOfDay("23:00"), End: MustTimeOfDay("09:00")},
			"lang":  {Name: "Lange dienst", Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("21:00")},
		},
	}
}

// Normalize merges a possibly partial stored Settings over the defaults, so a
// record persisted by an older version still yields a complete value.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()

	if s.BiWeeklyReferenceDate.IsZero() {
		s.BiWeeklyReferenceDate = def.BiWeeklyReferenceDate
	}
	if s.Rules == (StaffingRules{}) {
		s.Rules = def.Rules
	}
	if s.Rules.MinHoursBetweenShifts == 0 {
		s.Rules.MinHoursBetweenShifts = def.Rules.MinHoursBetweenShifts
	}
	if s.HolidayRules == (StaffingRules{}) {
		s.HolidayRules = def.HolidayRules
	}
	if len(s.Rotation.EligibleTeams) == 0 {
		s.Rotation.EligibleTeams = def.Rotation.EligibleTeams
	}
	if s.Rotation.Assignments == nil {
		s.Rotation.Assignments = map[string]EmployeeID{}
	}
	if len(s.Teams) == 0 {
		s.Teams = def.Teams
	} else {
		for id, team := range def.Teams {
			if _, ok := s.Teams[id]; !ok {
				s.Teams[id] = team
			}
		}
	}
	if len(s.ShiftTemplates) == 0 {
		s.ShiftTemplates = def.ShiftTemplates
	}
	return s
}

// TeamName returns the display name for a team, falling back to the raw ID
// for unconfigured teams.
func (s Settings) TeamName(id TeamID) string {
	if t, ok := s.Teams[id]; ok {
		return t.Name
	}
	return string(id)
}
