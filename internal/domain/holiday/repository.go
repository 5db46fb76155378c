package holiday

import "context"

type HolidayRepository interface {
	// List returns holidays ordered by date.
	List(ctx context.Context) ([]Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
