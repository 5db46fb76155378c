package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)

	ListBalances(w http.ResponseWriter, r *http.Request)
	UpsertBalance(w http.ResponseWriter, r *http.Request)
	UpdateBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ListRequests implements LeaveHandler. Supports ?employeeId=.
func (l *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{EmployeeID: r.URL.Query().Get("employeeId")}

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, requests)
}

// GetRequest implements LeaveHandler.
func (l *leaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, err := l.leaveService.GetLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, request)
}

// CreateRequest implements LeaveHandler.
func (l *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := l.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// UpdateRequest implements LeaveHandler.
func (l *leaveHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := l.leaveService.UpdateLeaveRequest(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, updated)
}

// ListBalances implements LeaveHandler. Requires ?employeeId=; supports
// ?year= and ?leaveType=.
func (l *leaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter := leave.LeaveBalanceFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Year:       year,
		LeaveType:  r.URL.Query().Get("leaveType"),
	}

	balances, err := l.leaveService.ListLeaveBalances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, balances)
}

// UpsertBalance implements LeaveHandler.
func (l *leaveHandlerImpl) UpsertBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertLeaveBalanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := l.leaveService.UpsertLeaveBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, balance)
}

// UpdateBalance implements LeaveHandler.
func (l *leaveHandlerImpl) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveBalanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := l.leaveService.UpdateLeaveBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, balance)
}
