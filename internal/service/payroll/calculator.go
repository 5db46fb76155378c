package payroll

import (
	"math"

	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator turns one employee's attendance and approved leave into a
// payroll summary. It holds no state.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate sums worked hours and leave days for period and prices the hours
// at hourlyRate. Deductions are always zero, so net equals gross.
func (c *Calculator) Calculate(period payroll.Period, attendance []payroll.AttendanceInterval, leave []payroll.LeaveInterval, hourlyRate decimal.Decimal) payroll.Summary {
	var totalHours float64
	for _, interval := range attendance {
		totalHours += c.WorkedHours(interval)
	}

	leaveDays := 0
	for _, l := range leave {
		leaveDays += c.LeaveDays(l, period)
	}

	gross := decimal.NewFromFloat(totalHours).Mul(hourlyRate)
	deductions := decimal.Zero

	return payroll.Summary{
		TotalHours:  totalHours,
		LeaveDays:   leaveDays,
		GrossSalary: gross,
		Deductions:  deductions,
		NetSalary:   gross.Sub(deductions),
	}
}

// WorkedHours is the length of the interval in hours. A clock-out before the
// clock-in counts as zero.
func (c *Calculator) WorkedHours(interval payroll.AttendanceInterval) float64 {
	worked := interval.ClockOut.Sub(interval.ClockIn)
	if worked < 0 {
		return 0
	}
	return worked.Hours()
}

// LeaveDays counts the whole days of l that fall inside period, both ends
// included. Leave entirely outside the period counts as zero.
func (c *Calculator) LeaveDays(l payroll.LeaveInterval, period payroll.Period) int {
	start := l.StartDate
	if start.Before(period.Start) {
		start = period.Start
	}
	end := l.EndDate
	if end.After(period.End) {
		end = period.End
	}
	if end.Before(start) {
		return 0
	}

	days := math.Floor(end.Sub(start).Hours() / 24)
	return int(days) + 1
}
