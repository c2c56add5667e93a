package memo

import "context"

type MemoRepository interface {
	Create(ctx context.Context, m Memo) (Memo, error)
	GetByID(ctx context.Context, id string) (Memo, error)
	List(ctx context.Context, filter MemoFilter) ([]Memo, int64, error)
	Update(ctx context.Context, m Memo) error
	Delete(ctx context.Context, id string) error
}
