package memo

import "context"

type MemoService interface {
	Create(ctx context.Context, createdBy string, req CreateMemoRequest) (MemoResponse, error)
	Get(ctx context.Context, id string) (MemoResponse, error)
	List(ctx context.Context, filter MemoFilter) ([]MemoResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateMemoRequest) (MemoResponse, error)
	// Acknowledge records that a user has read the memo. Acknowledging the
	// same memo twice is a no-op.
	Acknowledge(ctx context.Context, id string, userID string) (MemoResponse, error)
	Delete(ctx context.Context, id string) error
}
