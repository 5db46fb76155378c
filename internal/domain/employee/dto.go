package employee

import (
	"strings"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string  `json:"firstName" validate:"required"`
	LastName   string  `json:"lastName" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   *string `json:"hireDate,omitempty" validate:"omitempty,date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	return validator.Struct(r)
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	HireDate   *string `json:"hireDate,omitempty" validate:"omitempty,date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	for _, field := range []*string{r.FirstName, r.LastName, r.Email} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}

	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = errs.Add("firstName", "must not be empty")
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = errs.Add("lastName", "must not be empty")
	}
	if r.Email != nil && validator.IsEmpty(*r.Email) {
		errs = errs.Add("email", "must not be empty")
	}
	if len(errs) > 0 {
		return errs
	}

	return validator.Struct(r)
}

// IsEmpty reports whether the request would leave the record unchanged.
func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Email == nil &&
		r.Department == nil && r.Position == nil && r.HireDate == nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   *string `json:"hireDate"`
}

func NewEmployeeResponse(emp Employee) EmployeeResponse {
	var hireDate *string
	if emp.HireDate != nil {
		s := emp.HireDate.Format(validator.DateLayout)
		hireDate = &s
	}

	return EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		HireDate:   hireDate,
	}
}
