package rankfile

import (
	"strings"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RankFileFilter struct {
	EmployeeID string
	Type       Type
}

type CreateRankFileRequest struct {
	EmployeeID  string           `json:"employeeId" validate:"required,uuid"`
	Type        Type             `json:"type" validate:"required,oneof=achievement training certification evaluation"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,date"`
	Score       *decimal.Decimal `json:"score,omitempty"`
}

func (r *CreateRankFileRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validator.Struct(r)
}

type UpdateRankFileRequest struct {
	Type        *Type            `json:"type,omitempty" validate:"omitempty,oneof=achievement training certification evaluation"`
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,date"`
	Score       *decimal.Decimal `json:"score,omitempty"`
}

func (r *UpdateRankFileRequest) Validate() error {
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		return validator.ValidationErrors{}.Add("title", "must not be empty")
	}
	if r.Type != nil && *r.Type == "" {
		return validator.ValidationErrors{}.Add("type", "must be one of: achievement, training, certification, evaluation")
	}
	return validator.Struct(r)
}

func (r UpdateRankFileRequest) IsEmpty() bool {
	return r.Type == nil && r.Title == nil && r.Description == nil && r.Date == nil && r.Score == nil
}

type RankFileResponse struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employeeId"`
	Type        Type             `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        *string          `json:"date"`
	Score       *decimal.Decimal `json:"score"`
}

func NewRankFileResponse(r RankFile) RankFileResponse {
	var date *string
	if r.Date != nil {
		s := r.Date.Format(validator.DateLayout)
		date = &s
	}

	return RankFileResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Score:       r.Score,
	}
}
