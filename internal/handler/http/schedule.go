package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Upsert implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.scheduleService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Upsert schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	entries, err := h.scheduleService.ListByStaffAndRange(r.Context(), staffID, from, to)
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Delete implements ScheduleHandler. The schedule day and its attendance
// record go together.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	date := chi.URLParam(r, "date")

	if err := h.scheduleService.Delete(r.Context(), staffID, date); err != nil {
		slog.Error("Delete schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted", nil)
}

// CreateHoliday implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	holiday, err := h.scheduleService.CreateHoliday(r.Context(), req)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday declared", holiday)
}

// DeleteHoliday implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteHoliday(r.Context(), id); err != nil {
		slog.Error("DeleteHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}

// ListHolidays implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	holidays, err := h.scheduleService.ListHolidays(r.Context(), from, to)
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
