package schedule

import "context"

type ScheduleService interface {
	// UpsertShift writes the shift for the requested day and each repeated
	// day after it. Days are written in ascending date order; a failed day is
	// recorded and the remaining days still persist.
	UpsertShift(ctx context.Context, req UpsertShiftRequest) (UpsertShiftResponse, error)
	List(ctx context.Context, filter ScheduleFilter) ([]EntryResponse, error)
	Delete(ctx context.Context, id string) error
}
