package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler. Supports ?employeeId=.
func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ScheduleFilter{EmployeeID: r.URL.Query().Get("employeeId")}

	schedules, err := h.scheduleService.ListSchedules(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, schedules)
}

func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.scheduleService.GetSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, sc)
}

func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

func (h *scheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.scheduleService.UpdateSchedule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
