package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, holidays)
}

func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	hol, err := h.holidayService.GetHoliday(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, hol)
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.holidayService.UpdateHoliday(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
