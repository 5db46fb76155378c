// Package memory is an in-process backing store implementing every repository
// interface. It is instance-scoped: each Store is independent, which lets tests
// inject a fresh one per case.
package memory

import (
	"cmp"
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
)

type txKey struct{}

type state struct {
	employees      map[string]employee.Employee
	holidays       map[string]holiday.Holiday
	slots          map[string]schedule.Slot
	clockRecords   map[string]attendance.ClockRecord
	leaveRequests  map[string]leave.LeaveRequest
	leaveBalances  map[leave.BalanceKey]leave.LeaveBalance
	payrollRecords map[string]payroll.PayrollRecord
	rankFiles      map[string]rankfile.RankFile
	// seq records insertion order and breaks ties when sorting.
	seq  map[string]int64
	next int64
}

func newState() state {
	return state{
		employees:      make(map[string]employee.Employee),
		holidays:       make(map[string]holiday.Holiday),
		slots:          make(map[string]schedule.Slot),
		clockRecords:   make(map[string]attendance.ClockRecord),
		leaveRequests:  make(map[string]leave.LeaveRequest),
		leaveBalances:  make(map[leave.BalanceKey]leave.LeaveBalance),
		payrollRecords: make(map[string]payroll.PayrollRecord),
		rankFiles:      make(map[string]rankfile.RankFile),
		seq:            make(map[string]int64),
	}
}

func (s state) clone() state {
	return state{
		employees:      maps.Clone(s.employees),
		holidays:       maps.Clone(s.holidays),
		slots:          maps.Clone(s.slots),
		clockRecords:   maps.Clone(s.clockRecords),
		leaveRequests:  maps.Clone(s.leaveRequests),
		leaveBalances:  maps.Clone(s.leaveBalances),
		payrollRecords: maps.Clone(s.payrollRecords),
		rankFiles:      maps.Clone(s.rankFiles),
		seq:            maps.Clone(s.seq),
		next:           s.next,
	}
}

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// WithinTx serializes transactions and restores the previous state when fn
// fails. Nested calls join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Employees() employee.EmployeeRepository        { return employeeRepo{s} }
func (s *Store) Holidays() holiday.HolidayRepository            { return holidayRepo{s} }
func (s *Store) Schedules() schedule.ScheduleRepository         { return scheduleRepo{s} }
func (s *Store) ClockRecords() attendance.ClockRecordRepository { return clockRecordRepo{s} }
func (s *Store) LeaveRequests() leave.LeaveRequestRepository    { return leaveRequestRepo{s} }
func (s *Store) LeaveBalances() leave.LeaveBalanceRepository    { return leaveBalanceRepo{s} }
func (s *Store) PayrollRecords() payroll.PayrollRepository      { return payrollRepo{s} }
func (s *Store) RankFiles() rankfile.RankFileRepository         { return rankFileRepo{s} }

// newID must be called with mu held for writing.
func (s *Store) newID() string {
	id := uuid.NewString()
	s.data.next++
	s.data.seq[id] = s.data.next
	return id
}

func (s *Store) order(a, b string) int {
	return cmp.Compare(s.data.seq[a], s.data.seq[b])
}

// employeeExists must be called with mu held.
func (s *Store) employeeExists(id string) bool {
	_, ok := s.data.employees[id]
	return ok
}
