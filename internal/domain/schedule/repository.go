package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// GetByEmployeeAndDate matches by exact calendar day; returns nil when no
	// entry exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Entry, error)
	List(ctx context.Context, filter ScheduleFilter) ([]Entry, error)
	Create(ctx context.Context, e Entry) (Entry, error)
	UpdateShift(ctx context.Context, id string, shift Shift) error
	Delete(ctx context.Context, id string) error
}
