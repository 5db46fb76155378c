package holiday

import (
	"context"
	"testing"

	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/hris-core/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService(t *testing.T) {
	ctx := context.Background()
	svc := NewHolidayService(memory.NewStore().Holidays())

	newYear, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "New Year", Date: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, holiday.DefaultType, newYear.Type)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "Founders Day", Date: "2024-11-10", Type: "company"})
	require.NoError(t, err)

	list, err := svc.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-11-10", list[0].Date)

	name := "New Year's Day"
	updated, err := svc.UpdateHoliday(ctx, newYear.ID, holiday.UpdateHolidayRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "2025-01-01", updated.Date)

	require.NoError(t, svc.DeleteHoliday(ctx, newYear.ID))
	_, err = svc.GetHoliday(ctx, newYear.ID)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayService_Validation(t *testing.T) {
	svc := NewHolidayService(memory.NewStore().Holidays())

	_, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{Date: "2025-02-30"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "date")
}
