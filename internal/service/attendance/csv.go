package attendance

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

// DecodeUploadCSV reads a text/csv body whose header names the columns
// employeeId, date, clockIn and clockOut. Rows are validated later by
// attendance.UploadRequest.Validate.
func DecodeUploadCSV(r io.Reader) (attendance.UploadRequest, error) {
	records := make([]attendance.UploadRecord, 0)
	if err := gocsv.Unmarshal(r, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return attendance.UploadRequest{}, validator.ValidationErrors{}.Add("records", "records array required")
		}
		return attendance.UploadRequest{}, validator.ValidationErrors{}.Add("records", fmt.Sprintf("invalid CSV: %v", err))
	}
	return attendance.UploadRequest{Records: records}, nil
}
