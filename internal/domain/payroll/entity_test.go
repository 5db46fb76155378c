package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPeriod_Contains(t *testing.T) {
	p := Period{Start: date("2024-02-01"), End: date("2024-02-29")}

	assert.True(t, p.Contains(date("2024-02-01")))
	assert.True(t, p.Contains(date("2024-02-29")))
	assert.False(t, p.Contains(date("2024-01-31")))
	assert.False(t, p.Contains(date("2024-03-01")))
}

func TestProcessPayrollRequest_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	zero := decimal.Zero

	cases := []struct {
		name    string
		req     ProcessPayrollRequest
		wantErr bool
	}{
		{"valid", ProcessPayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31"}, false},
		{"single day", ProcessPayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-01"}, false},
		{"zero rate", ProcessPayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31", HourlyRate: &zero}, false},
		{"missing start", ProcessPayrollRequest{PeriodEnd: "2024-01-31"}, true},
		{"missing end", ProcessPayrollRequest{PeriodStart: "2024-01-01"}, true},
		{"malformed", ProcessPayrollRequest{PeriodStart: "01/01/2024", PeriodEnd: "2024-01-31"}, true},
		{"reversed", ProcessPayrollRequest{PeriodStart: "2024-02-01", PeriodEnd: "2024-01-31"}, true},
		{"negative rate", ProcessPayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31", HourlyRate: &negative}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessPayrollRequest_Period(t *testing.T) {
	req := ProcessPayrollRequest{PeriodStart: "2024-02-01", PeriodEnd: "2024-02-29"}
	p := req.Period()

	assert.Equal(t, date("2024-02-01"), p.Start)
	assert.Equal(t, date("2024-02-29"), p.End)
}
