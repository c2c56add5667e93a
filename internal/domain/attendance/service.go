package attendance

import "context"

type AttendanceService interface {
	UpsertRecord(ctx context.Context, req RecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	TimeIn(ctx context.Context, employeeID string) (SessionResponse, error)
	TimeOut(ctx context.Context, employeeID string) (SessionResponse, error)
	// GetActiveSession returns nil when the employee has no open session.
	GetActiveSession(ctx context.Context, employeeID string) (*SessionResponse, error)
	ListSessions(ctx context.Context, employeeID string, from, to string) ([]SessionResponse, error)
	AddSessionNote(ctx context.Context, sessionID string, req AddSessionNoteRequest) (SessionNoteResponse, error)

	// CloseStaleSessions force-closes sessions left open past the stale
	// threshold. Run from the background sweep.
	CloseStaleSessions(ctx context.Context) error
}
