package employeelog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employeelog"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/clock"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	employeeID string
	action     string
	timestamp  time.Time
}

type fakeLogRepo struct {
	logs     []employeelog.Log
	recorded []recordedCall
	err      error
}

func (f *fakeLogRepo) Record(ctx context.Context, employeeID string, action string, timestamp time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, recordedCall{employeeID: employeeID, action: action, timestamp: timestamp})
	return nil
}

func (f *fakeLogRepo) ListAll(ctx context.Context) ([]employeelog.Log, error) {
	return f.logs, f.err
}

func (f *fakeLogRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]employeelog.Log, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []employeelog.Log
	for _, l := range f.logs {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func TestRecordEntry_StampsWithClockAndLowercasesAction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 2, 9, 15, 0, 0, time.UTC)
	repo := &fakeLogRepo{}
	svc := NewLogService(repo, clock.Fake(now))

	err := svc.RecordEntry(ctx, "emp-1", employeelog.RecordLogRequest{Action: "Enter"})

	require.NoError(t, err)
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "emp-1", repo.recorded[0].employeeID)
	assert.Equal(t, "enter", repo.recorded[0].action)
	assert.Equal(t, now, repo.recorded[0].timestamp)
}

func TestRecordEntry_RejectsUnknownAction(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	err := svc.RecordEntry(ctx, "emp-1", employeelog.RecordLogRequest{Action: "lunch"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Empty(t, repo.recorded)
}

func TestRecordEntry_RejectsEmptyAction(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	err := svc.RecordEntry(ctx, "emp-1", employeelog.RecordLogRequest{Action: "  "})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestRecordEntry_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{err: employeelog.ErrEmployeeNotFound}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	err := svc.RecordEntry(ctx, "ghost", employeelog.RecordLogRequest{Action: "exit"})

	assert.ErrorIs(t, err, employeelog.ErrEmployeeNotFound)
}

func TestAllLogs_ProjectsDateAndTime(t *testing.T) {
	ctx := context.Background()
	name := "Aysel Aliyeva"
	email := "aysel@example.com"
	repo := &fakeLogRepo{logs: []employeelog.Log{{
		ID:            "log-1",
		EmployeeID:    "emp-1",
		Action:        "enter",
		Timestamp:     time.Date(2025, time.June, 2, 9, 15, 30, 0, time.UTC),
		EmployeeName:  &name,
		EmployeeEmail: &email,
	}}}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	views, err := svc.AllLogs(ctx)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, employeelog.LogSummaryView{
		EmployeeName:  name,
		EmployeeEmail: email,
		Action:        "enter",
		Date:          "2025-06-02",
		Time:          "09:15:30",
	}, views[0])
}

func TestAllLogs_ToleratesMissingEmployeeJoin(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{logs: []employeelog.Log{{
		ID:         "log-1",
		EmployeeID: "emp-1",
		Action:     "exit",
		Timestamp:  time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC),
	}}}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	views, err := svc.AllLogs(ctx)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].EmployeeName)
	assert.Empty(t, views[0].EmployeeEmail)
}

func TestLogsByEmployee_FiltersToOneEmployee(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{logs: []employeelog.Log{
		{ID: "log-1", EmployeeID: "emp-1", Action: "enter", Timestamp: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "log-2", EmployeeID: "emp-2", Action: "enter", Timestamp: time.Date(2025, time.June, 2, 9, 5, 0, 0, time.UTC)},
	}}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	views, err := svc.LogsByEmployee(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "09:00:00", views[0].Time)
}

func TestLogsByEmployee_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("connection reset")
	repo := &fakeLogRepo{err: repoErr}
	svc := NewLogService(repo, clock.Fake(time.Now()))

	_, err := svc.LogsByEmployee(ctx, "emp-1")

	assert.ErrorIs(t, err, repoErr)
}
