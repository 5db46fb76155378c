package holiday

import (
	"context"

	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) GetHoliday(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	if !validator.IsValidUUID(id) {
		return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
	}

	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(h), nil
}

func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: date,
		Type: req.Type,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(created), nil
}

func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if !validator.IsValidUUID(id) {
		return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
	}
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.Update(ctx, id, req)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(updated), nil
}

func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return holiday.ErrHolidayNotFound
	}
	return s.holidayRepo.Delete(ctx, id)
}
