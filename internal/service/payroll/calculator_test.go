package payroll

import (
	"testing"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculator_WorkedHours(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     float64
	}{
		{"full day", "2024-02-01T09:00:00Z", "2024-02-01T17:00:00Z", 8},
		{"half hour", "2024-02-01T09:00:00Z", "2024-02-01T09:30:00Z", 0.5},
		{"zero length", "2024-02-01T09:00:00Z", "2024-02-01T09:00:00Z", 0},
		{"clock out before clock in", "2024-02-01T17:00:00Z", "2024-02-01T09:00:00Z", 0},
		{"across midnight", "2024-02-01T22:00:00Z", "2024-02-02T06:00:00Z", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.WorkedHours(payroll.AttendanceInterval{ClockIn: at(tt.clockIn), ClockOut: at(tt.clockOut)})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_LeaveDays(t *testing.T) {
	c := NewCalculator()
	february := payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-02-10", "2024-02-10", 1},
		{"inside period", "2024-02-05", "2024-02-09", 5},
		{"clamped at start", "2024-01-29", "2024-02-03", 3},
		{"clamped at end", "2024-02-27", "2024-03-04", 3},
		{"covers whole period", "2024-01-01", "2024-03-31", 29},
		{"outside period", "2024-03-01", "2024-03-05", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.LeaveDays(payroll.LeaveInterval{StartDate: day(tt.start), EndDate: day(tt.end)}, february)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_Calculate(t *testing.T) {
	c := NewCalculator()
	period := payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")}

	summary := c.Calculate(period,
		[]payroll.AttendanceInterval{
			{Date: day("2024-02-05"), ClockIn: at("2024-02-05T09:00:00Z"), ClockOut: at("2024-02-05T17:00:00Z")},
			{Date: day("2024-02-06"), ClockIn: at("2024-02-06T09:00:00Z"), ClockOut: at("2024-02-06T16:00:00Z")},
		},
		[]payroll.LeaveInterval{
			{StartDate: day("2024-02-12"), EndDate: day("2024-02-13")},
		},
		decimal.NewFromInt(100),
	)

	assert.Equal(t, 15.0, summary.TotalHours)
	assert.Equal(t, 2, summary.LeaveDays)
	assert.True(t, summary.GrossSalary.Equal(decimal.NewFromInt(1500)), summary.GrossSalary.String())
	assert.True(t, summary.Deductions.IsZero())
	assert.True(t, summary.NetSalary.Equal(decimal.NewFromInt(1500)), summary.NetSalary.String())
}

func TestCalculator_GrossIsHoursTimesRate(t *testing.T) {
	c := NewCalculator()
	period := payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")}
	rate := decimal.RequireFromString("37.25")

	summary := c.Calculate(period, []payroll.AttendanceInterval{
		{ClockIn: at("2024-02-01T09:00:00Z"), ClockOut: at("2024-02-01T16:45:00Z")},
	}, nil, rate)

	assert.Equal(t, 7.75, summary.TotalHours)
	want := decimal.NewFromFloat(7.75).Mul(rate)
	assert.True(t, summary.GrossSalary.Equal(want), summary.GrossSalary.String())
	assert.True(t, summary.NetSalary.Equal(summary.GrossSalary))
}

func TestCalculator_NegativeIntervalContributesNothing(t *testing.T) {
	c := NewCalculator()

	summary := c.Calculate(payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")},
		[]payroll.AttendanceInterval{
			{ClockIn: at("2024-02-01T09:00:00Z"), ClockOut: at("2024-02-01T17:00:00Z")},
			{ClockIn: at("2024-02-02T17:00:00Z"), ClockOut: at("2024-02-02T09:00:00Z")},
		}, nil, decimal.NewFromInt(10))

	assert.Equal(t, 8.0, summary.TotalHours)
	assert.True(t, summary.GrossSalary.Equal(decimal.NewFromInt(80)))
}

// Overlapping approved requests are summed independently.
func TestCalculator_OverlappingLeaveIsCountedTwice(t *testing.T) {
	c := NewCalculator()

	summary := c.Calculate(payroll.Period{Start: day("2024-02-01"), End: day("2024-02-29")}, nil,
		[]payroll.LeaveInterval{
			{StartDate: day("2024-02-10"), EndDate: day("2024-02-12")},
			{StartDate: day("2024-02-11"), EndDate: day("2024-02-12")},
		}, decimal.NewFromInt(100))

	assert.Equal(t, 5, summary.LeaveDays)
	assert.True(t, summary.GrossSalary.IsZero())
}
