package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/domain/permission"
	"github.com/stafftrack/attendance-backend-go/internal/domain/shift"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	employeelog.LogRepository
	shift.ShiftRepository
	permission.PermissionRepository
	employee.EmployeeRepository
	clock clock.Clock
}

// dateRange is an inclusive excusal interval taken from an approved
// permission.
type dateRange struct {
	begin time.Time
	end   time.Time
}

// parseWorkTime parses a shift time-of-day string into an offset from
// midnight. Accepts "09:00:00" and "09:00".
func parseWorkTime(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("unparsable time of day %q", s)
}

// Reconcile implements attendance.AttendanceService.
//
// It combines the employee's raw clock events, their shift window and
// the permissions related to them into one attendance record per
// qualifying working day of the current month, most recent day first.
func (s *AttendanceServiceImpl) Reconcile(ctx context.Context, employeeID string, emp attendance.EmployeeContext) ([]attendance.Record, error) {
	var (
		logs        []employeelog.Log
		shifts      []shift.Shift
		permissions []permission.Permission
	)

	// The three fetches are independent reads; issue them together and
	// join before grouping.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.LogRepository.ListByEmployeeID(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shifts, err = s.ShiftRepository.ListByID(gCtx, emp.ShiftID)
		if err != nil {
			return fmt.Errorf("failed to fetch shift: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		permissions, err = s.PermissionRepository.ListRelatedToEmployee(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to fetch permissions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The catalog may return more than one row per id; first wins.
	if len(shifts) == 0 {
		return nil, fmt.Errorf("shift id %s: %w", emp.ShiftID, attendance.ErrShiftNotFound)
	}
	empShift := shifts[0]

	if empShift.WorkStart == "" || empShift.WorkEnd == "" {
		return nil, attendance.ErrShiftWindowInvalid
	}
	workStart, err := parseWorkTime(empShift.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("work start: %w", attendance.ErrShiftWindowInvalid)
	}
	workEnd, err := parseWorkTime(empShift.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("work end: %w", attendance.ErrShiftWindowInvalid)
	}

	// A permission excuses this employee when they requested it
	// themselves, or when it targets their boss. The two arms are
	// intentionally asymmetric: requester-self vs boss-as-target.
	var excusals []dateRange
	for _, p := range permissions {
		if p.Status != permission.StatusApproved {
			continue
		}
		if employeeID == p.RequesterID || (emp.BossID != nil && p.TargetEmployeeID == *emp.BossID) {
			excusals = append(excusals, dateRange{begin: p.BeginDate, end: p.EndDate})
		}
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	byDay := make(map[time.Time][]employeelog.Log)
	for _, l := range logs {
		day := time.Date(l.Timestamp.Year(), l.Timestamp.Month(), l.Timestamp.Day(), 0, 0, 0, 0, l.Timestamp.Location())
		if day.Before(startOfMonth) || day.After(today) {
			continue
		}
		byDay[day] = append(byDay[day], l)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	records := make([]attendance.Record, 0, len(days))
	for _, day := range days {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		dayLogs := byDay[day]
		var enter, exit *employeelog.Log
		for i := range dayLogs {
			l := dayLogs[i]
			switch {
			case l.IsEnter():
				if enter == nil || l.Timestamp.Before(enter.Timestamp) {
					enter = &dayLogs[i]
				}
			case l.IsExit():
				if exit == nil || l.Timestamp.After(exit.Timestamp) {
					exit = &dayLogs[i]
				}
			}
		}

		// A day without both swipes is dropped, not reported.
		if enter == nil || exit == nil {
			continue
		}

		expectedStart := day.Add(workStart)
		expectedEnd := day.Add(workEnd)

		// Overlap is tested against the expected shift window, not the
		// actual swipe times.
		excused := false
		for _, r := range excusals {
			if !r.begin.After(expectedEnd) && !r.end.Before(expectedStart) {
				excused = true
				break
			}
		}

		minutesLate := 0
		if !excused {
			if enter.Timestamp.After(expectedStart) {
				minutesLate += int(enter.Timestamp.Sub(expectedStart).Minutes())
			}
			if exit.Timestamp.Before(expectedEnd) {
				minutesLate += int(expectedEnd.Sub(exit.Timestamp).Minutes())
			}
		}

		records = append(records, attendance.Record{
			Employee:          emp,
			Shift:             empShift,
			EarliestEnterTime: enter.Timestamp,
			LatestExitTime:    exit.Timestamp,
			MinutesLate:       minutesLate,
		})
	}

	return records, nil
}

// AttendanceByRoles implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AttendanceByRoles(ctx context.Context, roleIDs []int) ([][]attendance.Record, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	wanted := make(map[int]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		wanted[id] = struct{}{}
	}

	var matched []employee.Employee
	for _, e := range employees {
		if _, ok := wanted[e.RoleID]; ok {
			matched = append(matched, e)
		}
	}

	// Reconciliations touch disjoint data, so fan out one task per
	// employee and join at Wait. The first failure cancels the rest and
	// aborts the whole batch.
	perEmployee := make([][]attendance.Record, len(matched))
	g, gCtx := errgroup.WithContext(ctx)
	for i, e := range matched {
		i, e := i, e
		g.Go(func() error {
			records, err := s.Reconcile(gCtx, e.ID, attendance.ContextFromEmployee(e))
			if err != nil {
				return fmt.Errorf("failed to reconcile attendance for employee %s: %w", e.ID, err)
			}
			perEmployee[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Employees with no qualifying days are omitted entirely; directory
	// order is preserved for the rest.
	results := make([][]attendance.Record, 0, len(matched))
	for _, records := range perEmployee {
		if len(records) > 0 {
			results = append(results, records)
		}
	}

	return results, nil
}

func NewAttendanceService(
	logRepo employeelog.LogRepository,
	shiftRepo shift.ShiftRepository,
	permissionRepo permission.PermissionRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		LogRepository:        logRepo,
		ShiftRepository:      shiftRepo,
		PermissionRepository: permissionRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
	}
}
