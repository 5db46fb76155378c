package schedule

import (
	"encoding/json"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type ScheduleFilter struct {
	EmployeeID string
}

type CreateScheduleRequest struct {
	EmployeeID string          `json:"employeeId" validate:"required,uuid"`
	DayOfWeek  json.RawMessage `json:"dayOfWeek"`
	StartTime  string          `json:"startTime" validate:"required,clock"`
	EndTime    string          `json:"endTime" validate:"required,clock"`

	// Days holds the normalized DayOfWeek once Validate succeeds.
	Days Days `json:"-"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = errs.Collect(validator.Struct(r))

	days, err := Normalize(r.DayOfWeek)
	errs = errs.Collect(err)
	if len(errs) > 0 {
		return errs
	}

	r.Days = days
	r.StartTime, _ = validator.ParseClock(r.StartTime)
	r.EndTime, _ = validator.ParseClock(r.EndTime)

	return ValidateShift(r.StartTime, r.EndTime)
}

type UpdateScheduleRequest struct {
	EmployeeID *string         `json:"employeeId,omitempty" validate:"omitempty,uuid"`
	DayOfWeek  json.RawMessage `json:"dayOfWeek,omitempty"`
	StartTime  *string         `json:"startTime,omitempty" validate:"omitempty,clock"`
	EndTime    *string         `json:"endTime,omitempty" validate:"omitempty,clock"`

	Days Days `json:"-"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = errs.Add("employeeId", "must not be empty")
	}
	if r.StartTime != nil && validator.IsEmpty(*r.StartTime) {
		errs = errs.Add("startTime", "must not be empty")
	}
	if r.EndTime != nil && validator.IsEmpty(*r.EndTime) {
		errs = errs.Add("endTime", "must not be empty")
	}
	if len(errs) > 0 {
		return errs
	}

	errs = errs.Collect(validator.Struct(r))
	if len(r.DayOfWeek) > 0 {
		days, err := Normalize(r.DayOfWeek)
		errs = errs.Collect(err)
		r.Days = days
	}
	if len(errs) > 0 {
		return errs
	}

	if r.StartTime != nil {
		s, _ := validator.ParseClock(*r.StartTime)
		r.StartTime = &s
	}
	if r.EndTime != nil {
		s, _ := validator.ParseClock(*r.EndTime)
		r.EndTime = &s
	}
	return nil
}

func (r UpdateScheduleRequest) IsEmpty() bool {
	return r.EmployeeID == nil && len(r.DayOfWeek) == 0 && r.StartTime == nil && r.EndTime == nil
}

// ValidateShift checks canonical HH:MM times.
func ValidateShift(startTime, endTime string) error {
	if endTime <= startTime {
		return validator.ValidationErrors{}.Add("endTime", "must be after startTime")
	}
	return nil
}

type ScheduleResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	DayOfWeek  Days   `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func NewScheduleResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		DayOfWeek:  s.DayOfWeek,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}
