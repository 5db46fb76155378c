package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSlots(t *testing.T) {
	slots := []Slot{
		{ID: "b", EmployeeID: "e1", Day: time.Wednesday, StartTime: "09:00", EndTime: "17:00"},
		{ID: "a", EmployeeID: "e1", Day: time.Monday, StartTime: "09:00", EndTime: "17:00"},
		{ID: "c", EmployeeID: "e1", Day: time.Saturday, StartTime: "10:00", EndTime: "14:00"},
		{ID: "d", EmployeeID: "e2", Day: time.Monday, StartTime: "09:00", EndTime: "17:00"},
	}

	got := GroupSlots(slots)
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, Days{time.Monday, time.Wednesday}, got[0].DayOfWeek)
	assert.Equal(t, "e1", got[0].EmployeeID)

	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, Days{time.Saturday}, got[1].DayOfWeek)

	assert.Equal(t, "d", got[2].ID)
	assert.Equal(t, "e2", got[2].EmployeeID)
}

func TestGroupSlots_Empty(t *testing.T) {
	assert.Empty(t, GroupSlots(nil))
}

func TestCreateScheduleRequest_Validate(t *testing.T) {
	req := CreateScheduleRequest{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		DayOfWeek:  []byte(`["Monday", 5]`),
		StartTime:  "09:00:00",
		EndTime:    "17:30",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, Days{time.Monday, time.Friday}, req.Days)
	assert.Equal(t, "09:00", req.StartTime)

	bad := CreateScheduleRequest{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		DayOfWeek:  []byte(`1`),
		StartTime:  "17:00",
		EndTime:    "09:00",
	}
	assert.Error(t, bad.Validate())

	missing := CreateScheduleRequest{}
	assert.Error(t, missing.Validate())
}
