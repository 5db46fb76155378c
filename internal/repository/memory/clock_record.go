package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type clockRecordRepo struct{ s *Store }

// latestClockInFirst orders by clock-in descending with missing values last.
func latestClockInFirst(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return b.Compare(*a)
	}
}

func (r clockRecordRepo) List(ctx context.Context, filter attendance.ClockRecordFilter) ([]attendance.ClockRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]attendance.ClockRecord, 0)
	for _, c := range r.s.data.clockRecords {
		if filter.EmployeeID != "" && c.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != nil && !c.Date.Equal(*filter.Date) {
			continue
		}
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b attendance.ClockRecord) int {
		return cmp.Or(b.Date.Compare(a.Date), latestClockInFirst(a.ClockIn, b.ClockIn), r.s.order(a.ID, b.ID))
	})
	return list, nil
}

func (r clockRecordRepo) GetByID(ctx context.Context, id string) (attendance.ClockRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.data.clockRecords[id]
	if !ok {
		return attendance.ClockRecord{}, attendance.ErrClockRecordNotFound
	}
	return c, nil
}

func (r clockRecordRepo) Create(ctx context.Context, record attendance.ClockRecord) (attendance.ClockRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(record.EmployeeID) {
		return attendance.ClockRecord{}, employee.ErrEmployeeReference
	}

	record.ID = r.s.newID()
	r.s.data.clockRecords[record.ID] = record
	return record, nil
}

func (r clockRecordRepo) FindOpen(ctx context.Context, employeeID string, date time.Time) (attendance.ClockRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	open := make([]attendance.ClockRecord, 0)
	for _, c := range r.s.data.clockRecords {
		if c.EmployeeID == employeeID && c.Date.Equal(date) && c.IsOpen() {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return attendance.ClockRecord{}, attendance.ErrOpenRecordNotFound
	}

	slices.SortFunc(open, func(a, b attendance.ClockRecord) int {
		return cmp.Or(latestClockInFirst(a.ClockIn, b.ClockIn), r.s.order(b.ID, a.ID))
	})
	return open[0], nil
}

func (r clockRecordRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.ClockRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.clockRecords[id]
	if !ok {
		return attendance.ClockRecord{}, attendance.ErrClockRecordNotFound
	}
	c.ClockOut = &clockOut
	r.s.data.clockRecords[id] = c
	return c, nil
}

func (r clockRecordRepo) Update(ctx context.Context, id string, req attendance.UpdateClockRecordRequest) (attendance.ClockRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.clockRecords[id]
	if !ok {
		return attendance.ClockRecord{}, attendance.ErrClockRecordNotFound
	}

	if req.ClockIn != nil {
		t, _ := validator.IsValidDateTime(*req.ClockIn)
		c.ClockIn = &t
	}
	if req.ClockOut != nil {
		t, _ := validator.IsValidDateTime(*req.ClockOut)
		c.ClockOut = &t
	}
	if req.Date != nil {
		c.Date, _ = validator.IsValidDate(*req.Date)
	}

	r.s.data.clockRecords[id] = c
	return c, nil
}

func (r clockRecordRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.clockRecords[id]; !ok {
		return attendance.ErrClockRecordNotFound
	}
	delete(r.s.data.clockRecords, id)
	return nil
}

func (r clockRecordRepo) ListClosed(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]attendance.ClockRecord, 0)
	for _, c := range r.s.data.clockRecords {
		if c.EmployeeID != employeeID || !c.IsClosed() {
			continue
		}
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b attendance.ClockRecord) int {
		return cmp.Or(a.Date.Compare(b.Date), a.ClockIn.Compare(*b.ClockIn), r.s.order(a.ID, b.ID))
	})
	return list, nil
}
