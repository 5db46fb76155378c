package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClockRecordRepo struct {
	attendance.ClockRecordRepository
	records []attendance.ClockRecord
}

func (r stubClockRecordRepo) ListClosed(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockRecord, error) {
	return r.records, nil
}

func TestAttendanceReader_KeepsClosedRecordsInPeriod(t *testing.T) {
	in, out := at("2024-02-05T09:00:00Z"), at("2024-02-05T17:00:00Z")
	early, earlyOut := at("2024-01-31T09:00:00Z"), at("2024-01-31T17:00:00Z")

	reader := NewAttendanceReader(stubClockRecordRepo{records: []attendance.ClockRecord{
		{Date: day("2024-01-31"), ClockIn: &early, ClockOut: &earlyOut},
		{Date: day("2024-02-05"), ClockIn: &in, ClockOut: &out},
		{Date: day("2024-02-06"), ClockIn: &in},
	}})

	period := payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")}
	intervals, err := reader.Intervals(context.Background(), "emp", period)
	require.NoError(t, err)

	require.Len(t, intervals, 1)
	assert.Equal(t, day("2024-02-05"), intervals[0].Date)
	assert.Equal(t, 8.0, intervals[0].ClockOut.Sub(intervals[0].ClockIn).Hours())
}
