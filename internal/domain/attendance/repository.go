package attendance

import (
	"context"
	"time"
)

type RecordRepository interface {
	Create(ctx context.Context, r Record) (Record, error)
	Upsert(ctx context.Context, r Record) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	Create(ctx context.Context, s TimeSession) (TimeSession, error)
	GetByID(ctx context.Context, id string) (TimeSession, error)
	// GetOpenSession returns the open session for an employee, or nil.
	GetOpenSession(ctx context.Context, employeeID string) (*TimeSession, error)
	Close(ctx context.Context, id string, timeOut time.Time) error
	List(ctx context.Context, employeeID string, from, to string) ([]TimeSession, error)
	AddNote(ctx context.Context, n SessionNote) (SessionNote, error)

	// CloseStaleBefore closes open sessions whose time-in predates the
	// cutoff, returning how many were closed. Used by the timeout sweep.
	CloseStaleBefore(ctx context.Context, cutoff time.Time, closeAt time.Time) (int64, error)
}
