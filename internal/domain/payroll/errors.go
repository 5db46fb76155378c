package payroll

import "errors"

var ErrPayrollRecordNotFound = errors.New("payroll record not found")
