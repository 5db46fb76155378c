package holiday

import (
	"strings"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required,date"`
	Type string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Type) {
		r.Type = DefaultType
	}

	return validator.Struct(r)
}

type UpdateHolidayRequest struct {
	Name *string `json:"name,omitempty"`
	Date *string `json:"date,omitempty" validate:"omitempty,date"`
	Type *string `json:"type,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		return validator.ValidationErrors{}.Add("name", "must not be empty")
	}
	if r.Date != nil && validator.IsEmpty(*r.Date) {
		return validator.Required("date")
	}

	return validator.Struct(r)
}

func (r UpdateHolidayRequest) IsEmpty() bool {
	return r.Name == nil && r.Date == nil && r.Type == nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format(validator.DateLayout),
		Type: h.Type,
	}
}
