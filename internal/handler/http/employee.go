package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/handler/http/response"
	"github.com/pizzayolo/backoffice-go/internal/service/sync"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpsertProfile(w http.ResponseWriter, r *http.Request)
	TriggerSync(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
	syncService     sync.Service
}

func NewEmployeeHandler(employeeService employee.Service, syncService sync.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		syncService:     syncService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Employee list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// UpsertProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req employee.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	if err := h.employeeService.UpsertProfile(r.Context(), req); err != nil {
		slog.Error("UpsertProfile service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay profile saved", nil)
}

// TriggerSync implements EmployeeHandler. Manual refresh of the roster and
// store directory, same work the scheduled job does.
func (h *EmployeeHandlerImpl) TriggerSync(w http.ResponseWriter, r *http.Request) {
	if err := h.syncService.SyncAll(r.Context()); err != nil {
		slog.Error("Manual sync error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Master data synced", nil)
}
