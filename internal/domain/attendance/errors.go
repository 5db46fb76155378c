package attendance

import "errors"

var (
	ErrClockRecordNotFound = errors.New("clock record not found")
	ErrOpenRecordNotFound  = errors.New("no open clock-in record found for this employee/date")
)
