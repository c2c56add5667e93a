package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

// StaleSessionAge is how long a session may stay open before the sweep
// force-closes it. Covers the forgot-to-clock-out case.
const StaleSessionAge = 16 * time.Hour

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.RecordRepository
	attendance.SessionRepository

	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	recordRepository attendance.RecordRepository,
	sessionRepository attendance.SessionRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                db,
		RecordRepository:  recordRepository,
		SessionRepository: sessionRepository,
		now:               time.Now,
	}
}

func (s *AttendanceServiceImpl) UpsertRecord(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	rec, err := s.RecordRepository.Upsert(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(rec), nil
}

func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	records, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) TimeIn(ctx context.Context, employeeID string) (attendance.SessionResponse, error) {
	open, err := s.SessionRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	if open != nil {
		return attendance.SessionResponse{}, attendance.ErrAlreadyTimedIn
	}

	session, err := s.SessionRepository.Create(ctx, attendance.TimeSession{
		EmployeeID: employeeID,
		TimeIn:     s.now(),
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.ToSessionResponse(session, s.now()), nil
}

func (s *AttendanceServiceImpl) TimeOut(ctx context.Context, employeeID string) (attendance.SessionResponse, error) {
	open, err := s.SessionRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}
	if open == nil {
		return attendance.SessionResponse{}, attendance.ErrNoOpenSession
	}

	now := s.now()
	if err := s.SessionRepository.Close(ctx, open.ID, now); err != nil {
		return attendance.SessionResponse{}, err
	}
	open.TimeOut = &now

	return attendance.ToSessionResponse(*open, now), nil
}

func (s *AttendanceServiceImpl) GetActiveSession(ctx context.Context, employeeID string) (*attendance.SessionResponse, error) {
	open, err := s.SessionRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, nil
	}

	resp := attendance.ToSessionResponse(*open, s.now())
	return &resp, nil
}

func (s *AttendanceServiceImpl) ListSessions(ctx context.Context, employeeID string, from, to string) ([]attendance.SessionResponse, error) {
	sessions, err := s.SessionRepository.List(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, attendance.ToSessionResponse(session, now))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) AddSessionNote(ctx context.Context, sessionID string, req attendance.AddSessionNoteRequest) (attendance.SessionNoteResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionNoteResponse{}, err
	}

	if _, err := s.SessionRepository.GetByID(ctx, sessionID); err != nil {
		return attendance.SessionNoteResponse{}, err
	}

	note, err := s.SessionRepository.AddNote(ctx, attendance.SessionNote{
		SessionID: sessionID,
		Body:      req.Body,
	})
	if err != nil {
		return attendance.SessionNoteResponse{}, err
	}

	return attendance.SessionNoteResponse{
		ID:        note.ID,
		Body:      note.Body,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *AttendanceServiceImpl) CloseStaleSessions(ctx context.Context) error {
	now := s.now()
	cutoff := now.Add(-StaleSessionAge)

	closed, err := s.SessionRepository.CloseStaleBefore(ctx, cutoff, now)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("closed stale time sessions", "closed", closed, "older_than", StaleSessionAge.String())
	}

	return nil
}
