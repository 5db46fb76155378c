package http

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
	attendanceservice "github.com/hris-core/hris-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler. Supports ?employeeId= and ?date=.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter := attendance.ClockRecordFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Date:       date,
	}

	records, err := h.attendanceService.ListClockRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, records)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetClockRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, record)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, record)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, record)
}

// Upload implements AttendanceHandler. A text/csv body is read as rows with
// a header line; anything else is read as {"records": [...]}.
func (h *attendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	var req attendance.UploadRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/csv" {
		var err error
		if req, err = attendanceservice.DecodeUploadCSV(r.Body); err != nil {
			response.HandleError(w, err)
			return
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateClockRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.attendanceService.UpdateClockRecord(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, record)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteClockRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
