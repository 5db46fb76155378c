package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	tx           database.Transactor
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(tx database.Transactor, scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		tx:           tx,
		scheduleRepo: scheduleRepo,
	}
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.ScheduleResponse, error) {
	if filter.EmployeeID != "" && !validator.IsValidUUID(filter.EmployeeID) {
		return []schedule.ScheduleResponse{}, nil
	}

	slots, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(schedule.GroupSlots(slots)), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	current, err := s.group(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.NewScheduleResponse(current), nil
}

// CreateSchedule implements schedule.ScheduleService. Creating a shift that
// already exists for some of the days extends it.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	var created schedule.Schedule
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.store(ctx, req.EmployeeID, req.Days, req.StartTime, req.EndTime)
		return err
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	slog.Info("schedule created", "schedule_id", created.ID, "employee_id", created.EmployeeID, "days", created.DayOfWeek.Names())
	return schedule.NewScheduleResponse(created), nil
}

// UpdateSchedule implements schedule.ScheduleService. Fields missing from req
// keep their current values. The old slots are removed and the merged shift
// is stored in their place.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if !validator.IsValidUUID(id) {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
	}
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	var updated schedule.Schedule
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.group(ctx, id)
		if err != nil {
			return err
		}
		if req.IsEmpty() {
			updated = current
			return nil
		}

		merged := current
		if req.EmployeeID != nil {
			merged.EmployeeID = *req.EmployeeID
		}
		if req.Days != nil {
			merged.DayOfWeek = req.Days
		}
		if req.StartTime != nil {
			merged.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			merged.EndTime = *req.EndTime
		}
		if err := schedule.ValidateShift(merged.StartTime, merged.EndTime); err != nil {
			return err
		}

		if err := s.scheduleRepo.DeleteGroup(ctx, id); err != nil {
			return fmt.Errorf("failed to remove schedule slots: %w", err)
		}
		updated, err = s.store(ctx, merged.EmployeeID, merged.DayOfWeek, merged.StartTime, merged.EndTime)
		return err
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.NewScheduleResponse(updated), nil
}

// DeleteSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return schedule.ErrScheduleNotFound
	}
	return s.scheduleRepo.DeleteGroup(ctx, id)
}

func (s *ScheduleServiceImpl) group(ctx context.Context, id string) (schedule.Schedule, error) {
	if !validator.IsValidUUID(id) {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}

	slots, err := s.scheduleRepo.ListGroup(ctx, id)
	if err != nil {
		return schedule.Schedule{}, err
	}
	groups := schedule.GroupSlots(slots)
	if len(groups) == 0 {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return groups[0], nil
}

// store fans days out into slots and reads back the whole shift.
func (s *ScheduleServiceImpl) store(ctx context.Context, employeeID string, days schedule.Days, startTime, endTime string) (schedule.Schedule, error) {
	if err := s.scheduleRepo.CreateSlots(ctx, employeeID, days, startTime, endTime); err != nil {
		return schedule.Schedule{}, err
	}

	slots, err := s.scheduleRepo.ListByShift(ctx, employeeID, startTime, endTime)
	if err != nil {
		return schedule.Schedule{}, err
	}
	groups := schedule.GroupSlots(slots)
	if len(groups) == 0 {
		return schedule.Schedule{}, fmt.Errorf("schedule for employee %s vanished after insert", employeeID)
	}
	return groups[0], nil
}

func toResponses(schedules []schedule.Schedule) []schedule.ScheduleResponse {
	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sc := range schedules {
		responses = append(responses, schedule.NewScheduleResponse(sc))
	}
	return responses
}
