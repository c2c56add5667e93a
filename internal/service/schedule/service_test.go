package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo keys entries by (employee, day) like the real table's
// unique constraint.
type fakeScheduleRepo struct {
	entries  map[string]schedule.Entry
	failDays map[string]error
	updates  int
	creates  int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		entries:  make(map[string]schedule.Entry),
		failDays: make(map[string]error),
	}
}

func (f *fakeScheduleRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeScheduleRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Entry, error) {
	e, ok := f.entries[f.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeScheduleRepo) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Entry, error) {
	out := make([]schedule.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	if err := f.failDays[e.Date.Format("2006-01-02")]; err != nil {
		return schedule.Entry{}, err
	}
	f.creates++
	f.entries[f.key(e.EmployeeID, e.Date)] = e
	return e, nil
}

func (f *fakeScheduleRepo) UpdateShift(ctx context.Context, id string, shift schedule.Shift) error {
	for k, e := range f.entries {
		if e.ID == id {
			e.Shift = shift
			f.entries[k] = e
			f.updates++
			return nil
		}
	}
	return schedule.ErrEntryNotFound
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	for k, e := range f.entries {
		if e.ID == id {
			delete(f.entries, k)
			return nil
		}
	}
	return schedule.ErrEntryNotFound
}

func TestUpsertShift_RepeatDaysAscending(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(nil, repo)

	resp, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-01-08",
		ShiftType:  "shift1",
		StartTime:  "06:00",
		EndTime:    "14:00",
		RepeatDays: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.FailedDays)
	require.Len(t, resp.Entries, 5)
	require.Len(t, resp.DayResults, 5)
	assert.Equal(t, 5, repo.creates)

	// Days come back in ascending order starting at the requested date.
	wantDates := []string{"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11", "2024-01-12"}
	for i, e := range resp.Entries {
		assert.Equal(t, wantDates[i], e.Date)
		assert.NotEmpty(t, e.ID)
	}
}

func TestUpsertShift_SecondWriteSameDayUpdates(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(nil, repo)

	first, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-01-08",
		ShiftType:  "shift1",
		StartTime:  "06:00",
		EndTime:    "14:00",
		RepeatDays: 1,
	})
	require.NoError(t, err)

	second, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-01-08",
		ShiftType:  "shift2",
		StartTime:  "14:00",
		EndTime:    "22:00",
		RepeatDays: 1,
	})
	require.NoError(t, err)

	// The day keeps a single entry; the later write wins.
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, first.Entries[0].ID, second.Entries[0].ID)
	assert.Equal(t, "shift2", second.Entries[0].ShiftType)
}

func TestUpsertShift_FailedDayDoesNotStopTheRest(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.failDays["2024-01-10"] = errors.New("write failed")
	svc := NewScheduleService(nil, repo)

	resp, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-01-08",
		ShiftType:  "shift1",
		StartTime:  "06:00",
		EndTime:    "14:00",
		RepeatDays: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.FailedDays)
	assert.Len(t, resp.Entries, 4)
	require.Len(t, resp.DayResults, 5)

	failed := resp.DayResults[2]
	assert.Equal(t, "2024-01-10", failed.Date)
	assert.False(t, failed.OK)
	assert.Equal(t, "write failed", failed.Error)

	// The day after the failure still got written.
	assert.True(t, resp.DayResults[3].OK)
}

func TestUpsertShift_NonTimedTypeClearsTimes(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(nil, repo)

	resp, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-01-08",
		ShiftType:  "restday",
		StartTime:  "06:00",
		EndTime:    "14:00",
		RepeatDays: 1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 1)
	assert.Empty(t, resp.Entries[0].StartTime)
	assert.Empty(t, resp.Entries[0].EndTime)
}

func TestUpsertShift_Validation(t *testing.T) {
	svc := NewScheduleService(nil, newFakeScheduleRepo())

	_, err := svc.UpsertShift(context.Background(), schedule.UpsertShiftRequest{
		EmployeeID: "",
		Date:       "not-a-date",
		ShiftType:  "shift9",
		RepeatDays: 0,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "shift_type")
	assert.Contains(t, fields, "repeat_days")
}
