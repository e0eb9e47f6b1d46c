package employeelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/clock"
)

type LogServiceImpl struct {
	employeelog.LogRepository
	clock clock.Clock
}

// RecordEntry implements employeelog.LogService.
func (s *LogServiceImpl) RecordEntry(ctx context.Context, employeeID string, req employeelog.RecordLogRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Actions are stored lowercase; readers report mixed case.
	action := strings.ToLower(req.Action)

	if err := s.LogRepository.Record(ctx, employeeID, action, s.clock.Now()); err != nil {
		return fmt.Errorf("failed to record log entry: %w", err)
	}
	return nil
}

// AllLogs implements employeelog.LogService.
func (s *LogServiceImpl) AllLogs(ctx context.Context) ([]employeelog.LogSummaryView, error) {
	logs, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	views := make([]employeelog.LogSummaryView, 0, len(logs))
	for _, l := range logs {
		views = append(views, toSummaryView(l))
	}
	return views, nil
}

// LogsByEmployee implements employeelog.LogService.
func (s *LogServiceImpl) LogsByEmployee(ctx context.Context, employeeID string) ([]employeelog.LogSummaryView, error) {
	logs, err := s.LogRepository.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for employee %s: %w", employeeID, err)
	}

	views := make([]employeelog.LogSummaryView, 0, len(logs))
	for _, l := range logs {
		views = append(views, toSummaryView(l))
	}
	return views, nil
}

// toSummaryView flattens a log into the display projection, splitting
// the timestamp into date and time strings.
func toSummaryView(l employeelog.Log) employeelog.LogSummaryView {
	view := employeelog.LogSummaryView{
		Action: l.Action,
		Date:   l.Timestamp.Format("2006-01-02"),
		Time:   l.Timestamp.Format("15:04:05"),
	}
	if l.EmployeeName != nil {
		view.EmployeeName = *l.EmployeeName
	}
	if l.EmployeeEmail != nil {
		view.EmployeeEmail = *l.EmployeeEmail
	}
	return view
}

func NewLogService(logRepo employeelog.LogRepository, clk clock.Clock) employeelog.LogService {
	return &LogServiceImpl{
		LogRepository: logRepo,
		clock:         clk,
	}
}
