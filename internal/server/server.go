package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"shiftbuilder/internal/config"
	"shiftbuilder/internal/report"
	"shiftbuilder/internal/roster"
	"shiftbuilder/internal/schedule"
)

// Config for the HTTP API handler.
type Config struct {
	Defaults *config.Config
	BasePath string
}

type apiErrorBody struct {
	Code    string         `json:"code" example:"bad_request"`
	Message string         `json:"message" example:"day 9: day index out of range"`
	Details map[string]any `json:"details,omitempty" jsonschema:"type=object,additionalProperties=true"`
}

// apiError models the error envelope.
type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

// New returns an HTTP handler exposing the ShiftBuilder API.
func New(cfg Config) (http.Handler, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/v0"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if cfg.Defaults == nil {
		cfg.Defaults = config.Default()
	}
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return newAPIError(status, "", msg, nil)
	}

	router := chi.NewRouter()
	hcfg := huma.DefaultConfig("ShiftBuilder API", "0.1.0")
	api := humachi.New(router, hcfg)
	group := huma.NewGroup(api, basePath)

	registerHealth(group)
	registerSchedules(group, cfg)

	return router, nil
}

func newAPIError(status int, code, message string, details map[string]any) huma.StatusError {
	if code == "" {
		code = defaultCodeForStatus(status)
	}
	return &apiError{
		status: status,
		Body: apiErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func handleError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, schedule.ErrEmployeeNotFound):
		return newAPIError(http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, schedule.ErrDuplicateEmployee):
		return newAPIError(http.StatusConflict, "duplicate_employee", err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidDay),
		errors.Is(err, schedule.ErrInvalidTimeSlot),
		errors.Is(err, schedule.ErrNoTimeSlots),
		errors.Is(err, schedule.ErrNoDepartments),
		errors.Is(err, schedule.ErrSlotsFrozen):
		return newAPIError(http.StatusBadRequest, "bad_request", err.Error(), nil)
	default:
		return newAPIError(http.StatusInternalServerError, "internal_error", "internal error", map[string]any{"error": err.Error()})
	}
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "validation_failed"
	case http.StatusInternalServerError:
		return "internal_error"
	default:
		return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

func registerSchedules(api huma.API, cfg Config) {
	huma.Register(api, huma.Operation{
		OperationID: "build-schedule",
		Method:      http.MethodPost,
		Path:        "/schedules",
		Summary:     "Build a schedule",
		Description: "Generates the shift catalog for the requested departments and days and runs one assignment pass over the posted roster.",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		Body BuildScheduleRequest `json:"body"`
	}) (*struct {
		Body ScheduleResponse `json:"body"`
	}, error) {
		resp, _, _, err := buildSchedule(cfg, input.Body)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body ScheduleResponse `json:"body"`
		}{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "build-schedule-report",
		Method:      http.MethodPost,
		Path:        "/schedules/report",
		Summary:     "Build a schedule report",
		Description: "Same input as build-schedule, but renders the human-readable weekly report.",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		Body BuildScheduleRequest `json:"body"`
	}) (*struct {
		ContentType string `header:"Content-Type"`
		Body        []byte
	}, error) {
		_, res, reg, err := buildSchedule(cfg, input.Body)
		if err != nil {
			return nil, handleError(err)
		}
		var buf bytes.Buffer
		report.Write(&buf, res, reg)
		return &struct {
			ContentType string `header:"Content-Type"`
			Body        []byte
		}{ContentType: "text/plain; charset=utf-8", Body: buf.Bytes()}, nil
	})
}

// buildSchedule runs one isolated scheduling pass; every request gets its own
// registry and builder, so concurrent requests never share state.
func buildSchedule(cfg Config, req BuildScheduleRequest) (ScheduleResponse, *schedule.Result, *schedule.Registry, error) {
	reg := schedule.NewRegistry()
	var skipped []string
	for _, rec := range req.Employees {
		e, err := rec.Employee()
		if err != nil {
			return ScheduleResponse{}, nil, nil, err
		}
		if err := reg.Add(e); err != nil {
			if errors.Is(err, schedule.ErrDuplicateEmployee) {
				skipped = append(skipped, e.EmployeeID)
				continue
			}
			return ScheduleResponse{}, nil, nil, err
		}
	}

	b := schedule.New(reg)
	slots := req.TimeSlots
	if len(slots) == 0 {
		slots = cfg.Defaults.Schedule.TimeSlots
	}
	if err := b.SetTimeSlots(slots); err != nil {
		return ScheduleResponse{}, nil, nil, err
	}
	days := req.Days
	if len(days) == 0 {
		days = cfg.Defaults.Days()
	}
	if err := b.GenerateShifts(req.Departments, days, true); err != nil {
		return ScheduleResponse{}, nil, nil, err
	}
	res, err := b.AssignShifts()
	if err != nil {
		return ScheduleResponse{}, nil, nil, err
	}

	ex := roster.BuildExport(reg.List(), res)
	resp := ScheduleResponse{
		Employees:         ex.Employees,
		Shifts:            ex.Shifts,
		UnassignedCount:   ex.UnassignedCount,
		SkippedDuplicates: skipped,
	}
	return resp, res, reg, nil
}
