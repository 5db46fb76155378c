package schedule

import (
	"slices"
	"time"
)

// Slot is one stored schedule row: a single weekday of a recurring shift.
type Slot struct {
	ID         string
	EmployeeID string
	Day        time.Weekday
	StartTime  string
	EndTime    string
}

// Schedule is the API view of a weekly shift: the slots of one employee that
// share a start and end time.
type Schedule struct {
	ID         string
	EmployeeID string
	DayOfWeek  Days
	StartTime  string
	EndTime    string
}

// GroupSlots folds slots into schedules keyed by employee, start time and end
// time. Schedules keep the order in which their first slot appears. A
// schedule's ID is the ID of its lowest-ordinal slot.
func GroupSlots(slots []Slot) []Schedule {
	type shiftKey struct {
		employeeID string
		start      string
		end        string
	}

	index := make(map[shiftKey]int)
	lowest := make([]time.Weekday, 0)
	schedules := make([]Schedule, 0)

	for _, s := range slots {
		k := shiftKey{employeeID: s.EmployeeID, start: s.StartTime, end: s.EndTime}
		i, ok := index[k]
		if !ok {
			index[k] = len(schedules)
			lowest = append(lowest, s.Day)
			schedules = append(schedules, Schedule{
				ID:         s.ID,
				EmployeeID: s.EmployeeID,
				DayOfWeek:  Days{s.Day},
				StartTime:  s.StartTime,
				EndTime:    s.EndTime,
			})
			continue
		}

		if !schedules[i].DayOfWeek.Contains(s.Day) {
			schedules[i].DayOfWeek = append(schedules[i].DayOfWeek, s.Day)
		}
		if s.Day < lowest[i] {
			lowest[i] = s.Day
			schedules[i].ID = s.ID
		}
	}

	for i := range schedules {
		slices.Sort(schedules[i].DayOfWeek)
	}
	return schedules
}
