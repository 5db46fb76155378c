package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
)

type scheduleRepo struct{ s *Store }

func sameShift(a, b schedule.Slot) bool {
	return a.EmployeeID == b.EmployeeID && a.StartTime == b.StartTime && a.EndTime == b.EndTime
}

func (r scheduleRepo) sorted(keep func(schedule.Slot) bool) []schedule.Slot {
	list := make([]schedule.Slot, 0)
	for _, s := range r.s.data.slots {
		if keep(s) {
			list = append(list, s)
		}
	}
	slices.SortFunc(list, func(a, b schedule.Slot) int {
		return cmp.Or(
			strings.Compare(a.EmployeeID, b.EmployeeID),
			strings.Compare(a.StartTime, b.StartTime),
			strings.Compare(a.EndTime, b.EndTime),
			cmp.Compare(a.Day, b.Day),
		)
	})
	return list
}

func (r scheduleRepo) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.sorted(func(s schedule.Slot) bool {
		return filter.EmployeeID == "" || s.EmployeeID == filter.EmployeeID
	}), nil
}

func (r scheduleRepo) ListGroup(ctx context.Context, id string) ([]schedule.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	member, ok := r.s.data.slots[id]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	return r.sorted(func(s schedule.Slot) bool { return sameShift(s, member) }), nil
}

func (r scheduleRepo) ListByShift(ctx context.Context, employeeID, startTime, endTime string) ([]schedule.Slot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := schedule.Slot{EmployeeID: employeeID, StartTime: startTime, EndTime: endTime}
	return r.sorted(func(s schedule.Slot) bool { return sameShift(s, key) }), nil
}

func (r scheduleRepo) CreateSlots(ctx context.Context, employeeID string, days schedule.Days, startTime, endTime string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(employeeID) {
		return employee.ErrEmployeeReference
	}

	key := schedule.Slot{EmployeeID: employeeID, StartTime: startTime, EndTime: endTime}
	for _, day := range days {
		exists := false
		for _, s := range r.s.data.slots {
			if sameShift(s, key) && s.Day == day {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		slot := key
		slot.ID = r.s.newID()
		slot.Day = day
		r.s.data.slots[slot.ID] = slot
	}
	return nil
}

func (r scheduleRepo) DeleteGroup(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	member, ok := r.s.data.slots[id]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	for k, s := range r.s.data.slots {
		if sameShift(s, member) {
			delete(r.s.data.slots, k)
		}
	}
	return nil
}
