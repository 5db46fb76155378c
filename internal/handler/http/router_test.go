package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
	"github.com/hris-core/hris-backend-go/internal/repository/memory"
	attendanceService "github.com/hris-core/hris-backend-go/internal/service/attendance"
	employeeService "github.com/hris-core/hris-backend-go/internal/service/employee"
	holidayService "github.com/hris-core/hris-backend-go/internal/service/holiday"
	leaveService "github.com/hris-core/hris-backend-go/internal/service/leave"
	payrollService "github.com/hris-core/hris-backend-go/internal/service/payroll"
	rankFileService "github.com/hris-core/hris-backend-go/internal/service/rankfile"
	scheduleService "github.com/hris-core/hris-backend-go/internal/service/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	now := func() time.Time { return time.Date(2024, time.February, 5, 9, 0, 0, 0, time.UTC) }

	return NewRouter(RouterOptions{AllowedOrigins: []string{"*"}}, Handlers{
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(store.Employees())),
		Holiday:    NewHolidayHandler(holidayService.NewHolidayService(store.Holidays())),
		Schedule:   NewScheduleHandler(scheduleService.NewScheduleService(store, store.Schedules())),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(store, store.ClockRecords(), attendanceService.WithClock(now))),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(store, store.LeaveRequests(), store.LeaveBalances())),
		Payroll: NewPayrollHandler(payrollService.NewPayrollService(
			store,
			store.PayrollRecords(),
			store.Employees(),
			payrollService.NewAttendanceReader(store.ClockRecords()),
			payrollService.NewLeaveReader(store.LeaveRequests()),
			decimal.NewFromInt(100),
		)),
		RankFile: NewRankFileHandler(rankFileService.NewRankFileService(store.RankFiles())),
	})
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createEmployee(t *testing.T, h http.Handler, email string) employee.EmployeeResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/employees", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[employee.EmployeeResponse](t, rec)
}

func TestRouter_Heartbeat(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_EmployeeCRUD(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	rec := doRequest(t, h, http.MethodGet, "/employees/"+emp.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/employees/"+emp.ID, map[string]string{"department": "R&D"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "R&D", decodeBody[employee.EmployeeResponse](t, rec).Department)

	rec = doRequest(t, h, http.MethodPost, "/employees", map[string]string{"firstName": "X", "lastName": "Y", "email": "ada@example.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]employee.EmployeeResponse](t, rec), 1)

	rec = doRequest(t, h, http.MethodDelete, "/employees/"+emp.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/employees/"+emp.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee not found", decodeBody[response.ErrorBody](t, rec).Error)
}

func TestRouter_ValidationAndMalformedBodies(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/employees", map[string]string{"firstName": "Ada"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[response.ErrorBody](t, rec)
	assert.Contains(t, body.Details, "lastName")
	assert.Contains(t, body.Details, "email")

	rec = doRequest(t, h, http.MethodPost, "/holidays", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/time-tracking?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/leave/balance", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "employeeId required", decodeBody[response.ErrorBody](t, rec).Details["employeeId"])

	rec = doRequest(t, h, http.MethodPost, "/rank-file", map[string]string{
		"employeeId": "123e4567-e89b-12d3-a456-426614174000",
		"type":       "promotion",
		"title":      "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Schedules(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	rec := doRequest(t, h, http.MethodPost, "/schedules", map[string]interface{}{
		"employeeId": emp.ID,
		"dayOfWeek":  5,
		"startTime":  "09:00",
		"endTime":    "17:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"dayOfWeek":["friday"]`)
	created := decodeBody[map[string]interface{}](t, rec)

	rec = doRequest(t, h, http.MethodPost, "/schedules", map[string]interface{}{
		"employeeId": emp.ID,
		"dayOfWeek":  []interface{}{"Monday", "monday", 1, 7},
		"startTime":  "08:00",
		"endTime":    "12:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"dayOfWeek":["sunday","monday"]`)

	rec = doRequest(t, h, http.MethodPost, "/schedules", map[string]interface{}{
		"employeeId": emp.ID,
		"dayOfWeek":  "someday",
		"startTime":  "08:00",
		"endTime":    "12:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/schedules?employeeId="+emp.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]schedule.ScheduleResponse](t, rec), 2)

	rec = doRequest(t, h, http.MethodDelete, "/schedules/"+created["id"].(string), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_ClockOutWithoutOpenRecord(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	rec := doRequest(t, h, http.MethodPost, "/time-tracking/clock-out", map[string]string{"employeeId": emp.ID})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No open clock-in record found for this employee/date", decodeBody[response.ErrorBody](t, rec).Error)

	rec = doRequest(t, h, http.MethodGet, "/time-tracking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]attendance.ClockRecordResponse](t, rec))
}

func TestRouter_UploadCSV(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	csvBody := "employeeId,date,clockIn,clockOut\n" +
		emp.ID + ",2024-02-01,2024-02-01T09:00:00Z,2024-02-01T17:00:00Z\n" +
		emp.ID + ",2024-02-02,2024-02-02T09:00:00Z,\n"

	req := httptest.NewRequest(http.MethodPost, "/time-tracking/upload", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decodeBody[attendance.UploadResponse](t, rec)
	assert.Equal(t, 2, result.Count)

	rec = doRequest(t, h, http.MethodPost, "/time-tracking/upload", map[string]interface{}{"records": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/time-tracking/upload", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "records array required", decodeBody[response.ErrorBody](t, rec).Details["records"])
}

func TestRouter_PayrollScenario(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	for _, shift := range []map[string]string{
		{"employeeId": emp.ID, "date": "2024-02-05", "clockIn": "2024-02-05T09:00:00Z"},
		{"employeeId": emp.ID, "date": "2024-02-05", "clockOut": "2024-02-05T17:00:00Z"},
	} {
		path := "/time-tracking/clock-in"
		if _, ok := shift["clockOut"]; ok {
			path = "/time-tracking/clock-out"
		}
		rec := doRequest(t, h, http.MethodPost, path, shift)
		require.Less(t, rec.Code, 300, rec.Body.String())
	}

	rec := doRequest(t, h, http.MethodPost, "/time-tracking/upload", map[string]interface{}{
		"records": []map[string]string{
			{"employeeId": emp.ID, "date": "2024-02-06", "clockIn": "2024-02-06T09:00:00Z", "clockOut": "2024-02-06T16:00:00Z"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/leave/requests", map[string]string{
		"employeeId": emp.ID,
		"type":       "annual",
		"startDate":  "2024-02-12",
		"endDate":    "2024-02-13",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	request := decodeBody[leave.LeaveRequestResponse](t, rec)

	rec = doRequest(t, h, http.MethodPut, "/leave/requests/"+request.ID, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/payroll/process", map[string]interface{}{"periodEnd": "2024-02-29"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/payroll/process", map[string]interface{}{
		"periodStart": "2024-02-01",
		"periodEnd":   "2024-02-29",
		"hourlyRate":  100,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	result := decodeBody[payroll.ProcessPayrollResponse](t, rec)
	assert.Equal(t, "Payroll processed", result.Message)
	require.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.Equal(t, 15.0, record.TotalHours)
	assert.Equal(t, 2, record.LeaveDays)
	assert.True(t, record.GrossSalary.Equal(decimal.NewFromInt(1500)))
	assert.True(t, record.Deductions.IsZero())
	assert.True(t, record.NetSalary.Equal(decimal.NewFromInt(1500)))

	rec = doRequest(t, h, http.MethodGet, "/payroll/"+record.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/payroll?employeeId="+emp.ID+"&periodStart=2024-02-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]payroll.PayrollRecordResponse](t, rec), 1)
}

func TestRouter_LeaveBalance(t *testing.T) {
	h := newTestRouter(t)
	emp := createEmployee(t, h, "ada@example.com")

	rec := doRequest(t, h, http.MethodPost, "/leave/balance", map[string]interface{}{
		"employeeId": emp.ID, "leaveType": "annual", "year": 2024, "balance": 12,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodPut, "/leave/balance/update", map[string]interface{}{
		"employeeId": emp.ID, "leaveType": "annual", "year": 2024, "delta": -2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decodeBody[leave.LeaveBalanceResponse](t, rec).Balance.Equal(decimal.NewFromInt(10)))

	rec = doRequest(t, h, http.MethodPut, "/leave/balance/update", map[string]interface{}{
		"employeeId": emp.ID, "leaveType": "sick", "year": 2024, "delta": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/leave/balance?employeeId="+emp.ID+"&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]leave.LeaveBalanceResponse](t, rec), 1)
}
