/*
Package sqlite provides the SQLite-backed implementation of roster.Store.

PURPOSE:
  Persists employees, shifts, absences, and settings. The schema mirrors the
  operational model: employees carry their bi-weekly templates as JSON
  columns, absences are unique per (employee, date), and settings live as
  key/value JSON segments so partial updates stay cheap.

KEY TABLES:
  employees:     Roster members incl. week templates (JSON)
  shifts:        Scheduled duties, one row per shift
  availability:  Absence records, UNIQUE(employee_id, date), upserted
  settings:      Key/value JSON segments (rules, holidayPeriods, ...)

CASCADES:
  Deleting an employee deletes its shifts and absences via foreign keys,
  matching the domain's cascade rule.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety; SQLite runs in WAL mode so readers
  do not block.

SEE ALSO:
  - roster/storage.go: Interface definition
  - roster/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/hetvlot/rooster/roster"
)

// Store implements roster.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ roster.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		main_team TEXT,
		extra_teams TEXT NOT NULL DEFAULT '[]',
		contract_hours TEXT NOT NULL DEFAULT '0',
		active INTEGER NOT NULL DEFAULT 1,
		week_schedule_week1 TEXT NOT NULL DEFAULT '[]',
		week_schedule_week2 TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		team TEXT,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
	CREATE INDEX IF NOT EXISTS idx_shifts_employee_date ON shifts(employee_id, date);

	CREATE TABLE IF NOT EXISTS availability (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		UNIQUE(employee_id, date)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

const employeeColumns = `id, name, email, main_team, extra_teams, contract_hours, active, week_schedule_week1, week_schedule_week2`

func scanEmployee(row interface{ Scan(...any) error }) (roster.Employee, error) {
	var e roster.Employee
	var email sql.NullString
	var extraTeams, contractHours, week1, week2 string
	if err := row.Scan(&e.ID, &e.Name, &email, &e.MainTeam, &extraTeams, &contractHours, &e.Active, &week1, &week2); err != nil {
		return roster.Employee{}, err
	}
	e.Email = email.String
	if err := json.Unmarshal([]byte(extraTeams), &e.ExtraTeams); err != nil {
		return roster.Employee{}, fmt.Errorf("decode extra_teams: %w", err)
	}
	hours, err := decimal.NewFromString(contractHours)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("decode contract_hours: %w", err)
	}
	e.ContractHours = hours
	if err := json.Unmarshal([]byte(week1), &e.Week1); err != nil {
		return roster.Employee{}, fmt.Errorf("decode week_schedule_week1: %w", err)
	}
	if err := json.Unmarshal([]byte(week2), &e.Week2); err != nil {
		return roster.Employee{}, fmt.Errorf("decode week_schedule_week2: %w", err)
	}
	return e, nil
}

func employeeArgs(e roster.Employee) ([]any, error) {
	extraTeams, err := json.Marshal(e.ExtraTeams)
	if err != nil {
		return nil, err
	}
	week1, err := json.Marshal(e.Week1)
	if err != nil {
		return nil, err
	}
	week2, err := json.Marshal(e.Week2)
	if err != nil {
		return nil, err
	}
	return []any{e.ID, e.Name, e.Email, e.MainTeam, string(extraTeams), e.ContractHours.String(), e.Active, string(week1), string(week2)}, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []roster.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id roster.EmployeeID) (roster.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.Employee{}, fmt.Errorf("%w: employee %s", roster.ErrNotFound, id)
	}
	return e, err
}

func (s *Store) CreateEmployee(ctx context.Context, e roster.Employee) (roster.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = roster.EmployeeID(uuid.NewString())
	}
	args, err := employeeArgs(e)
	if err != nil {
		return roster.Employee{}, err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e roster.Employee) (roster.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	args, err := employeeArgs(e)
	if err != nil {
		return roster.Employee{}, err
	}
	// Move ID to the end for the WHERE clause.
	args = append(args[1:], args[0])
	res, err := s.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, main_team = ?, extra_teams = ?,
		    contract_hours = ?, active = ?, week_schedule_week1 = ?, week_schedule_week2 = ?
		WHERE id = ?`, args...)
	if err != nil {
		return roster.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return roster.Employee{}, fmt.Errorf("%w: employee %s", roster.ErrNotFound, e.ID)
	}
	return e, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id roster.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Foreign keys cascade to shifts and availability.
	_, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// =============================================================================
// SHIFTS
// =============================================================================

const shiftColumns = `id, employee_id, team, date, start_time, end_time, notes`

func scanShift(row interface{ Scan(...any) error }) (roster.Shift, error) {
	var sh roster.Shift
	var date, start, end string
	if err := row.Scan(&sh.ID, &sh.EmployeeID, &sh.Team, &date, &start, &end, &sh.Notes); err != nil {
		return roster.Shift{}, err
	}
	var err error
	if sh.Date, err = roster.ParseDate(date); err != nil {
		return roster.Shift{}, err
	}
	if sh.StartTime, err = roster.ParseTimeOfDay(start); err != nil {
		return roster.Shift{}, err
	}
	if sh.EndTime, err = roster.ParseTimeOfDay(end); err != nil {
		return roster.Shift{}, err
	}
	return sh, nil
}

func (s *Store) queryShifts(ctx context.Context, query string, args ...any) ([]roster.Shift, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var out []roster.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

func (s *Store) ListShifts(ctx context.Context) ([]roster.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryShifts(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY date, start_time`)
}

func (s *Store) ListShiftsInRange(ctx context.Context, from, to roster.Date) ([]roster.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryShifts(ctx, `
		SELECT `+shiftColumns+` FROM shifts
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time`, from.String(), to.String())
}

func (s *Store) CreateShift(ctx context.Context, sh roster.Shift) (roster.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sh.ID == "" {
		sh.ID = roster.ShiftID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (`+shiftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sh.ID, sh.EmployeeID, sh.Team, sh.Date.String(), sh.StartTime.String(), sh.EndTime.String(), sh.Notes)
	if err != nil {
		return roster.Shift{}, fmt.Errorf("create shift: %w", err)
	}
	return sh, nil
}

func (s *Store) UpdateShift(ctx context.Context, sh roster.Shift) (roster.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE shifts
		SET employee_id = ?, team = ?, date = ?, start_time = ?, end_time = ?, notes = ?
		WHERE id = ?`,
		sh.EmployeeID, sh.Team, sh.Date.String(), sh.StartTime.String(), sh.EndTime.String(), sh.Notes, sh.ID)
	if err != nil {
		return roster.Shift{}, fmt.Errorf("update shift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return roster.Shift{}, fmt.Errorf("%w: shift %s", roster.ErrNotFound, sh.ID)
	}
	return sh, nil
}

func (s *Store) DeleteShift(ctx context.Context, id roster.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func (s *Store) DeleteShiftsInRange(ctx context.Context, from, to roster.Date) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE date >= ? AND date <= ?`, from.String(), to.String())
	if err != nil {
		return 0, fmt.Errorf("delete shifts in range: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// =============================================================================
// ABSENCES
// =============================================================================

func (s *Store) ListAbsences(ctx context.Context) ([]roster.Absence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, employee_id, date, type, reason FROM availability ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list absences: %w", err)
	}
	defer rows.Close()

	var out []roster.Absence
	for rows.Next() {
		var a roster.Absence
		var date string
		if err := rows.Scan(&a.ID, &a.EmployeeID, &date, &a.Type, &a.Reason); err != nil {
			return nil, err
		}
		var err error
		if a.Date, err = roster.ParseDate(date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpsertAbsence(ctx context.Context, a roster.Absence) (roster.Absence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = roster.AbsenceID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO availability (id, employee_id, date, type, reason)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, date)
		DO UPDATE SET type = excluded.type, reason = excluded.reason`,
		a.ID, a.EmployeeID, a.Date.String(), a.Type, a.Reason)
	if err != nil {
		return roster.Absence{}, fmt.Errorf("upsert absence: %w", err)
	}
	return a, nil
}

func (s *Store) DeleteAbsence(ctx context.Context, id roster.EmployeeID, date roster.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM availability WHERE employee_id = ? AND date = ?`, id, date.String())
	if err != nil {
		return fmt.Errorf("delete absence: %w", err)
	}
	return nil
}

// =============================================================================
// SETTINGS - Key/value JSON segments
// =============================================================================

// Settings persist as one JSON segment per top-level key so the admin can
// update one concern without rewriting the rest.
var settingsKeys = []string{
	"biWeeklyReferenceDate", "rules", "holidayRules",
	"holidayPeriods", "responsibleRotation", "teams", "shiftTemplates",
}

func (s *Store) LoadSettings(ctx context.Context) (roster.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return roster.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	var settings roster.Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return roster.Settings{}, err
		}
		raw := []byte(value)
		var err error
		switch key {
		case "biWeeklyReferenceDate":
			err = json.Unmarshal(raw, &settings.BiWeeklyReferenceDate)
		case "rules":
			err = json.Unmarshal(raw, &settings.Rules)
		case "holidayRules":
			err = json.Unmarshal(raw, &settings.HolidayRules)
		case "holidayPeriods":
			err = json.Unmarshal(raw, &settings.HolidayPeriods)
		case "responsibleRotation":
			err = json.Unmarshal(raw, &settings.Rotation)
		case "teams":
			err = json.Unmarshal(raw, &settings.Teams)
		case "shiftTemplates":
			err = json.Unmarshal(raw, &settings.ShiftTemplates)
		}
		if err != nil {
			return roster.Settings{}, fmt.Errorf("decode settings %q: %w", key, err)
		}
	}
	if err := rows.Err(); err != nil {
		return roster.Settings{}, err
	}
	return settings.Normalize(), nil
}

func (s *Store) SaveSettings(ctx context.Context, settings roster.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	segments := map[string]any{
		"biWeeklyReferenceDate": settings.BiWeeklyReferenceDate,
		"rules":                 settings.Rules,
		"holidayRules":          settings.HolidayRules,
		"holidayPeriods":        settings.HolidayPeriods,
		"responsibleRotation":   settings.Rotation,
		"teams":                 settings.Teams,
		"shiftTemplates":        settings.ShiftTemplates,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	defer tx.Rollback()

	for _, key := range settingsKeys {
		value, err := json.Marshal(segments[key])
		if err != nil {
			return fmt.Errorf("encode settings %q: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, string(value)); err != nil {
			return fmt.Errorf("save settings %q: %w", key, err)
		}
	}
	return tx.Commit()
}
