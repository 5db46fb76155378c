package schedule

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/hris-core/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (schedule.ScheduleService, string) {
	t.Helper()
	store := memory.NewStore()
	emp, err := store.Employees().Create(context.Background(), employee.Employee{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)
	return NewScheduleService(store, store.Schedules()), emp.ID
}

func create(t *testing.T, svc schedule.ScheduleService, employeeID, days, start, end string) schedule.ScheduleResponse {
	t.Helper()
	resp, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		EmployeeID: employeeID,
		DayOfWeek:  json.RawMessage(days),
		StartTime:  start,
		EndTime:    end,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateSchedule_FansOutAndGroups(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)

	resp := create(t, svc, empID, `["Friday", 1, "monday", 3]`, "09:00:00", "17:00")
	assert.Equal(t, schedule.Days{time.Monday, time.Wednesday, time.Friday}, resp.DayOfWeek)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)

	got, err := svc.GetSchedule(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp, got)

	list, err := svc.ListSchedules(ctx, schedule.ScheduleFilter{EmployeeID: empID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.ID, list[0].ID)
}

func TestCreateSchedule_ExtendsExistingShift(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)

	first := create(t, svc, empID, `"tuesday"`, "08:00", "12:00")
	second := create(t, svc, empID, `[0, 2]`, "08:00", "12:00")

	assert.Equal(t, schedule.Days{time.Sunday, time.Tuesday}, second.DayOfWeek)
	assert.NotEqual(t, first.ID, second.ID, "sunday is now the lowest day")

	list, err := svc.ListSchedules(ctx, schedule.ScheduleFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateSchedule_Validation(t *testing.T) {
	svc, empID := setup(t)

	tests := []struct {
		name  string
		req   schedule.CreateScheduleRequest
		field string
	}{
		{"unknown day", schedule.CreateScheduleRequest{EmployeeID: empID, DayOfWeek: json.RawMessage(`"funday"`), StartTime: "09:00", EndTime: "17:00"}, "dayOfWeek"},
		{"out of range", schedule.CreateScheduleRequest{EmployeeID: empID, DayOfWeek: json.RawMessage(`[1, 8]`), StartTime: "09:00", EndTime: "17:00"}, "dayOfWeek"},
		{"missing days", schedule.CreateScheduleRequest{EmployeeID: empID, StartTime: "09:00", EndTime: "17:00"}, "dayOfWeek"},
		{"end before start", schedule.CreateScheduleRequest{EmployeeID: empID, DayOfWeek: json.RawMessage(`1`), StartTime: "17:00", EndTime: "09:00"}, "endTime"},
		{"bad clock", schedule.CreateScheduleRequest{EmployeeID: empID, DayOfWeek: json.RawMessage(`1`), StartTime: "9am", EndTime: "17:00"}, "startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSchedule(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestCreateSchedule_UnknownEmployee(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		EmployeeID: "00000000-0000-0000-0000-000000000000",
		DayOfWeek:  json.RawMessage(`1`),
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeReference)
}

func TestUpdateSchedule_ReplacesSlots(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)
	created := create(t, svc, empID, `[1, 2, 3]`, "09:00", "17:00")

	updated, err := svc.UpdateSchedule(ctx, created.ID, schedule.UpdateScheduleRequest{
		DayOfWeek: json.RawMessage(`["thursday", 5]`),
		EndTime:   ptr("18:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, schedule.Days{time.Thursday, time.Friday}, updated.DayOfWeek)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, "18:00", updated.EndTime)

	list, err := svc.ListSchedules(ctx, schedule.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, updated.ID, list[0].ID)

	_, err = svc.GetSchedule(ctx, created.ID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestUpdateSchedule_InvalidMergeChangesNothing(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)
	created := create(t, svc, empID, `1`, "09:00", "17:00")

	_, err := svc.UpdateSchedule(ctx, created.ID, schedule.UpdateScheduleRequest{StartTime: ptr("18:00")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endTime")

	got, err := svc.GetSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateSchedule_EmptyRequestReturnsCurrent(t *testing.T) {
	svc, empID := setup(t)
	created := create(t, svc, empID, `[1, 2]`, "09:00", "17:00")

	got, err := svc.UpdateSchedule(context.Background(), created.ID, schedule.UpdateScheduleRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestScheduleNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	missing := "00000000-0000-0000-0000-000000000000"

	_, err := svc.GetSchedule(ctx, missing)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	_, err = svc.GetSchedule(ctx, "1")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	_, err = svc.UpdateSchedule(ctx, missing, schedule.UpdateScheduleRequest{StartTime: ptr("08:00")})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	assert.ErrorIs(t, svc.DeleteSchedule(ctx, missing), schedule.ErrScheduleNotFound)
}

func TestDeleteSchedule_RemovesWholeShift(t *testing.T) {
	ctx := context.Background()
	svc, empID := setup(t)
	created := create(t, svc, empID, `[1, 2, 3]`, "09:00", "17:00")
	other := create(t, svc, empID, `6`, "10:00", "14:00")

	require.NoError(t, svc.DeleteSchedule(ctx, created.ID))

	list, err := svc.ListSchedules(ctx, schedule.ScheduleFilter{EmployeeID: empID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, other.ID, list[0].ID)
}

func ptr[T any](v T) *T {
	return &v
}
