package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.ScheduleRepository
}

func NewScheduleService(db *database.DB, scheduleRepository schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                 db,
		ScheduleRepository: scheduleRepository,
	}
}

// UpsertShift writes the requested shift across repeat_days consecutive
// days, starting at the requested date and moving forward. Days are written
// one at a time in ascending order; a failure on one day is recorded in its
// DayResult and the remaining days still get written.
func (s *ScheduleServiceImpl) UpsertShift(ctx context.Context, req schedule.UpsertShiftRequest) (schedule.UpsertShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.UpsertShiftResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.Date)

	shift := schedule.Shift{
		Type:      schedule.ShiftType(req.ShiftType),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	// Non-timed shift types persist empty time fields regardless of input.
	if !shift.Type.HasTimes() {
		shift.StartTime = ""
		shift.EndTime = ""
	}

	var resp schedule.UpsertShiftResponse
	for i := 0; i < req.RepeatDays; i++ {
		date := startDate.AddDate(0, 0, i)

		entry, err := s.upsertDay(ctx, req.EmployeeID, date, shift)
		result := schedule.DayResult{Date: date.Format("2006-01-02"), OK: err == nil}
		if err != nil {
			result.Error = err.Error()
			resp.FailedDays++
		} else {
			resp.Entries = append(resp.Entries, schedule.ToResponse(entry))
		}
		resp.DayResults = append(resp.DayResults, result)
	}

	return resp, nil
}

// upsertDay updates the existing entry for the (employee, day) pair or
// creates a fresh one with a caller-assigned id.
func (s *ScheduleServiceImpl) upsertDay(ctx context.Context, employeeID string, date time.Time, shift schedule.Shift) (schedule.Entry, error) {
	existing, err := s.ScheduleRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return schedule.Entry{}, err
	}

	if existing != nil {
		if err := s.ScheduleRepository.UpdateShift(ctx, existing.ID, shift); err != nil {
			return schedule.Entry{}, err
		}
		existing.Shift = shift
		return *existing, nil
	}

	return s.ScheduleRepository.Create(ctx, schedule.Entry{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       schedule.Normalize(date),
		Shift:      shift,
	})
}

func (s *ScheduleServiceImpl) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.EntryResponse, error) {
	entries, err := s.ScheduleRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, schedule.ToResponse(e))
	}

	return responses, nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ScheduleRepository.Delete(ctx, id)
}
