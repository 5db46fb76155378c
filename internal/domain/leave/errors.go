package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveBalanceNotFound = errors.New("leave balance not found")
)
