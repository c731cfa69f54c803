/*
handlers.go - HTTP API handlers for the roster planner

PURPOSE:
  Exposes the scheduling rule engine and the roster records via REST.
  Handles HTTP request/response, JSON serialization, boundary validation,
  and delegates every decision to the roster package.

ENDPOINTS:
  Records:
    GET/POST       /api/employees            List / create
    GET/PUT/DELETE /api/employees/{id}       Single employee (delete cascades)
    GET/POST       /api/shifts               List (optional range) / create
    PUT/DELETE     /api/shifts/{id}          Update / delete
    DELETE         /api/shifts               Bulk delete by range
    GET/POST       /api/availability         List / upsert absence
    DELETE         /api/availability         Remove absence (employee+date)
    GET/PUT        /api/settings             Whole settings value
    PUT            /api/settings/{key}       One settings segment

  Engine:
    POST /api/validate                       Validate a candidate shift
    GET  /api/validation/summary             Range summary
    GET  /api/rotation/responsible           Responsible for a week
    PUT  /api/rotation/assignments           Pin a manual responsible
    DELETE /api/rotation/assignments         Unpin
    PUT  /api/rotation/start                 Anchor the rotation
    POST /api/schedule/apply                 Run the auto-scheduler
    GET  /api/overtime/night-credit          Credited minutes for a night
    POST /api/overtime/weekly                Weekly overtime from credits
    GET  /api/weeks/{monday}                 Week context (parity, ISO, ...)
    GET  /api/hours                          Employee hours in a period

ERROR HANDLING:
  - 400: malformed input (bad dates/times, failed validate tags)
  - 404: unknown record
  - 500: store failures
  Business-rule findings are never HTTP errors; they come back as issues in
  a 200 response.
*/
package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/hetvlot/rooster/roster"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    roster.Store
	Logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a new handler with the given store.
func NewHandler(store roster.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Logger:   logger,
		validate: validator.New(),
	}
}

// engineContext loads the settings and snapshot every engine endpoint needs.
func (h *Handler) engineContext(r *http.Request) (roster.Settings, roster.Dataset, error) {
	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		return roster.Settings{}, roster.Dataset{}, err
	}
	data, err := roster.LoadDataset(r.Context(), h.Store)
	if err != nil {
		return roster.Settings{}, roster.Dataset{}, err
	}
	return settings, data, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		h.Logger.Warn(msg, zap.Error(err))
		msg = msg + ": " + err.Error()
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// decodeValid decodes the body and checks the validate tags.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request", err)
		return false
	}
	return true
}

func (h *Handler) parseDateQuery(w http.ResponseWriter, r *http.Request, name string) (roster.Date, bool) {
	d, err := roster.ParseDate(r.URL.Query().Get(name))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid "+name, err)
		return roster.Date{}, false
	}
	return d, true
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"employees": employees})
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), roster.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"employee": emp})
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	emp, err := h.Store.CreateEmployee(r.Context(), req.toEmployee(""))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to create employee", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"employee": emp})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	emp, err := h.Store.UpdateEmployee(r.Context(), req.toEmployee(roster.EmployeeID(chi.URLParam(r, "id"))))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"employee": emp})
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteEmployee(r.Context(), roster.EmployeeID(chi.URLParam(r, "id"))); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to delete employee", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var shifts []roster.Shift
	var err error
	if q.Get("startDate") != "" && q.Get("endDate") != "" {
		from, ok := h.parseDateQuery(w, r, "startDate")
		if !ok {
			return
		}
		to, ok := h.parseDateQuery(w, r, "endDate")
		if !ok {
			return
		}
		shifts, err = h.Store.ListShiftsInRange(r.Context(), from, to)
	} else {
		shifts, err = h.Store.ListShifts(r.Context())
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to list shifts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"shifts": shifts})
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	shift, err := req.toShift("")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid shift", err)
		return
	}
	created, err := h.Store.CreateShift(r.Context(), shift)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to create shift", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"shift": created})
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	shift, err := req.toShift(roster.ShiftID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid shift", err)
		return
	}
	updated, err := h.Store.UpdateShift(r.Context(), shift)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "shift not found", nil)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"shift": updated})
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteShift(r.Context(), roster.ShiftID(chi.URLParam(r, "id"))); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to delete shift", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) DeleteShiftsInRange(w http.ResponseWriter, r *http.Request) {
	from, ok := h.parseDateQuery(w, r, "startDate")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(w, r, "endDate")
	if !ok {
		return
	}
	deleted, err := h.Store.DeleteShiftsInRange(r.Context(), from, to)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to delete shifts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

// =============================================================================
// AVAILABILITY HANDLERS
// =============================================================================

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.Store.ListAbsences(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to list availability", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"availability": absences})
}

func (h *Handler) UpsertAbsence(w http.ResponseWriter, r *http.Request) {
	var req AbsenceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	date, err := roster.ParseDate(req.Date)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	absence, err := h.Store.UpsertAbsence(r.Context(), roster.Absence{
		EmployeeID: roster.EmployeeID(req.EmployeeID),
		Date:       date,
		Type:       roster.AbsenceType(req.Type),
		Reason:     req.Reason,
	})
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save availability", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"availability": absence})
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDateQuery(w, r, "date")
	if !ok {
		return
	}
	id := roster.EmployeeID(r.URL.Query().Get("employeeId"))
	if err := h.Store.DeleteAbsence(r.Context(), id, date); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to delete availability", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings roster.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid settings", err)
		return
	}
	if err := h.Store.SaveSettings(r.Context(), settings.Normalize()); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// PutSettingsKey updates one settings segment, e.g. PUT /api/settings/rules
// with {"value": {...}}.
func (h *Handler) PutSettingsKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	key := chi.URLParam(r, "key")
	switch key {
	case "biWeeklyReferenceDate":
		err = json.Unmarshal(body.Value, &settings.BiWeeklyReferenceDate)
	case "rules":
		err = json.Unmarshal(body.Value, &settings.Rules)
	case "holidayRules":
		err = json.Unmarshal(body.Value, &settings.HolidayRules)
	case "holidayPeriods":
		err = json.Unmarshal(body.Value, &settings.HolidayPeriods)
	case "responsibleRotation":
		err = json.Unmarshal(body.Value, &settings.Rotation)
	case "teams":
		err = json.Unmarshal(body.Value, &settings.Teams)
	case "shiftTemplates":
		err = json.Unmarshal(body.Value, &settings.ShiftTemplates)
	default:
		h.writeError(w, http.StatusBadRequest, "unknown settings key "+key, nil)
		return
	}
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid value for "+key, err)
		return
	}

	if err := h.Store.SaveSettings(r.Context(), settings.Normalize()); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// =============================================================================
// VALIDATION HANDLERS
// =============================================================================

func (h *Handler) ValidateShift(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	shift, err := req.toShift("")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid shift", err)
		return
	}

	settings, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	result := roster.NewValidator(settings, data).ValidateShift(shift, roster.ShiftID(req.ExcludeShiftID))
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ValidationSummary(w http.ResponseWriter, r *http.Request) {
	from, ok := h.parseDateQuery(w, r, "startDate")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(w, r, "endDate")
	if !ok {
		return
	}

	settings, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	summary := roster.NewValidator(settings, data).ValidationSummary(from, to)
	h.writeJSON(w, http.StatusOK, summary)
}

// =============================================================================
// ROTATION HANDLERS
// =============================================================================

func (h *Handler) GetResponsible(w http.ResponseWriter, r *http.Request) {
	week, ok := h.parseDateQuery(w, r, "week")
	if !ok {
		return
	}

	settings, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	rotation := roster.NewRotation(settings, data)
	monday := week.MondayOf()

	resp := ResponsibleResponse{
		Monday:                 monday.String(),
		IsWeekendOrHolidayWeek: rotation.IsWeekendOrHolidayWeek(monday),
		Source:                 "none",
	}
	if emp, ok := rotation.ManualAssignment(monday); ok {
		resp.Responsible = &emp
		resp.Source = "manual"
	} else if emp, ok := rotation.ResponsibleFor(monday); ok {
		resp.Responsible = &emp
		resp.Source = "rotation"
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PinResponsible(w http.ResponseWriter, r *http.Request) {
	var req RotationAssignmentRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	monday, err := roster.ParseDate(req.Monday)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid monday", err)
		return
	}

	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	settings.Rotation.Assignments[monday.MondayOf().String()] = roster.EmployeeID(req.EmployeeID)
	if err := h.Store.SaveSettings(r.Context(), settings); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) UnpinResponsible(w http.ResponseWriter, r *http.Request) {
	monday, ok := h.parseDateQuery(w, r, "monday")
	if !ok {
		return
	}

	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	delete(settings.Rotation.Assignments, monday.MondayOf().String())
	if err := h.Store.SaveSettings(r.Context(), settings); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) SetRotationStart(w http.ResponseWriter, r *http.Request) {
	var req RotationStartRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	start, err := roster.ParseDate(req.StartDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid startDate", err)
		return
	}

	settings, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	settings.Rotation.RotationStart = start.MondayOf()
	settings.Rotation.RotationStartEmployee = roster.EmployeeID(req.EmployeeID)
	if err := h.Store.SaveSettings(r.Context(), settings); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// =============================================================================
// AUTO-SCHEDULER HANDLER
// =============================================================================

func (h *Handler) ApplySchedule(w http.ResponseWriter, r *http.Request) {
	var req ApplyScheduleRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	from, err := roster.ParseDate(req.StartDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid startDate", err)
		return
	}
	to, err := roster.ParseDate(req.EndDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid endDate", err)
		return
	}

	settings, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	scheduler := roster.NewAutoScheduler(settings)
	var created []roster.Shift
	if req.EmployeeID != "" {
		created, err = scheduler.ApplyWeekSchedule(r.Context(), data, h.Store, roster.EmployeeID(req.EmployeeID), from, to)
	} else {
		created, err = scheduler.ApplyWeekScheduleAll(r.Context(), data, h.Store, from, to)
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to apply week schedule", err)
		return
	}
	h.Logger.Info("applied week schedule",
		zap.String("from", from.String()), zap.String("to", to.String()), zap.Int("created", len(created)))
	h.writeJSON(w, http.StatusOK, map[string]any{"shifts": created, "count": len(created)})
}

// =============================================================================
// OVERTIME HANDLERS
// =============================================================================

func (h *Handler) NightCredit(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDateQuery(w, r, "date")
	if !ok {
		return
	}
	q := r.URL.Query()
	active := atoiDefault(q.Get("activeMinutes"), 0)
	forfait := atoiDefault(q.Get("forfaitMinutes"), 0)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"date":            date.String(),
		"creditedMinutes": roster.CreditedMinutesForNightShift(date, active, forfait),
	})
}

func (h *Handler) WeeklyOvertime(w http.ResponseWriter, r *http.Request) {
	var req WeeklyOvertimeRequest
	if !h.decodeValid(w, r, &req) {
		return
	}

	byDate := make(map[roster.Date]int, len(req.CreditedMinutesByDate))
	for key, minutes := range req.CreditedMinutesByDate {
		date, err := roster.ParseDate(key)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid date key", err)
			return
		}
		byDate[date] = minutes
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"overtimeMinutes": roster.WeeklyOvertime(byDate, req.ContractMinutesPerWeek),
	})
}

// =============================================================================
// WEEK CONTEXT & HOURS
// =============================================================================

func (h *Handler) WeekContext(w http.ResponseWriter, r *http.Request) {
	day, err := roster.ParseDate(chi.URLParam(r, "monday"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid week date", err)
		return
	}

	settings, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	monday := day.MondayOf()
	calendar := roster.NewCalendar(settings)
	rotation := roster.NewRotation(settings, data)

	resp := WeekContextResponse{
		Monday:      monday.String(),
		WeekParity:  calendar.WeekParity(monday),
		ISOWeek:     roster.ISOWeekNumber(monday),
		WeekendOpen: calendar.IsWeekendOpen(monday.AddDays(5)),
	}
	if period, ok := settings.HolidayPeriodFor(monday); ok {
		resp.HolidayPeriod = &period
	}
	if emp, ok := rotation.ResponsibleFor(monday); ok {
		resp.Responsible = &emp
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) EmployeeHours(w http.ResponseWriter, r *http.Request) {
	from, ok := h.parseDateQuery(w, r, "startDate")
	if !ok {
		return
	}
	to, ok := h.parseDateQuery(w, r, "endDate")
	if !ok {
		return
	}
	id := roster.EmployeeID(r.URL.Query().Get("employeeId"))

	_, data, err := h.engineContext(r)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load roster", err)
		return
	}

	hours, _ := data.HoursInPeriod(id, from, to).Float64()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"employeeId": id,
		"startDate":  from.String(),
		"endDate":    to.String(),
		"hours":      hours,
	})
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
