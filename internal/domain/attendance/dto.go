package attendance

import (
	"fmt"
	"time"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type ClockRecordFilter struct {
	EmployeeID string
	Date       *time.Time
}

type ClockInRequest struct {
	EmployeeID string  `json:"employeeId" validate:"required,uuid"`
	Date       *string `json:"date,omitempty" validate:"omitempty,date"`
	ClockIn    *string `json:"clockIn,omitempty" validate:"omitempty,datetime3339"`
}

func (r *ClockInRequest) Validate() error {
	return validator.Struct(r)
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employeeId" validate:"required,uuid"`
	Date       *string `json:"date,omitempty" validate:"omitempty,date"`
	ClockOut   *string `json:"clockOut,omitempty" validate:"omitempty,datetime3339"`
}

func (r *ClockOutRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateClockRecordRequest struct {
	Date     *string `json:"date,omitempty" validate:"omitempty,date"`
	ClockIn  *string `json:"clockIn,omitempty" validate:"omitempty,datetime3339"`
	ClockOut *string `json:"clockOut,omitempty" validate:"omitempty,datetime3339"`
}

func (r *UpdateClockRecordRequest) Validate() error {
	return validator.Struct(r)
}

func (r UpdateClockRecordRequest) IsEmpty() bool {
	return r.Date == nil && r.ClockIn == nil && r.ClockOut == nil
}

// UploadRecord is one row of a bulk upload. The csv tags name the columns of
// a text/csv body.
type UploadRecord struct {
	EmployeeID string `json:"employeeId" csv:"employeeId" validate:"required,uuid"`
	Date       string `json:"date" csv:"date" validate:"required,date"`
	ClockIn    string `json:"clockIn" csv:"clockIn" validate:"omitempty,datetime3339"`
	ClockOut   string `json:"clockOut" csv:"clockOut" validate:"omitempty,datetime3339"`
}

type UploadRequest struct {
	Records []UploadRecord `json:"records"`
}

// Validate reports row errors as records[i].field.
func (r *UploadRequest) Validate() error {
	if r.Records == nil {
		return validator.ValidationErrors{}.Add("records", "records array required")
	}

	var errs validator.ValidationErrors
	for i := range r.Records {
		err := validator.Struct(&r.Records[i])
		if err == nil {
			continue
		}
		var rowErrs validator.ValidationErrors
		rowErrs = rowErrs.Collect(err)
		for _, e := range rowErrs {
			errs = errs.Add(fmt.Sprintf("records[%d].%s", i, e.Field), e.Message)
		}
	}
	return errs.Err()
}

// ToClockRecord converts a validated row.
func (u UploadRecord) ToClockRecord() ClockRecord {
	rec := ClockRecord{EmployeeID: u.EmployeeID}
	rec.Date, _ = validator.IsValidDate(u.Date)
	if u.ClockIn != "" {
		t, _ := validator.IsValidDateTime(u.ClockIn)
		rec.ClockIn = &t
	}
	if u.ClockOut != "" {
		t, _ := validator.IsValidDateTime(u.ClockOut)
		rec.ClockOut = &t
	}
	return rec
}

type ClockRecordResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	ClockIn    *time.Time `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut"`
}

func NewClockRecordResponse(c ClockRecord) ClockRecordResponse {
	return ClockRecordResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		Date:       c.Date.Format(validator.DateLayout),
		ClockIn:    utc(c.ClockIn),
		ClockOut:   utc(c.ClockOut),
	}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

type UploadResponse struct {
	Created []ClockRecordResponse `json:"created"`
	Count   int                   `json:"count"`
}
