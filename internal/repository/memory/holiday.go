package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type holidayRepo struct{ s *Store }

func (r holidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]holiday.Holiday, 0, len(r.s.data.holidays))
	for _, h := range r.s.data.holidays {
		list = append(list, h)
	}
	slices.SortFunc(list, func(a, b holiday.Holiday) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return r.s.order(a.ID, b.ID)
	})
	return list, nil
}

func (r holidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.data.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (r holidayRepo) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	newHoliday.ID = r.s.newID()
	r.s.data.holidays[newHoliday.ID] = newHoliday
	return newHoliday, nil
}

func (r holidayRepo) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.Holiday, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h, ok := r.s.data.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}

	if req.Name != nil {
		h.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil {
		h.Date, _ = validator.IsValidDate(*req.Date)
	}
	if req.Type != nil {
		h.Type = *req.Type
	}

	r.s.data.holidays[id] = h
	return h, nil
}

func (r holidayRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.s.data.holidays, id)
	return nil
}
