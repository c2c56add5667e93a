package leave

import "context"

type CreditRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveCredit, error)
	List(ctx context.Context) ([]LeaveCredit, error)
	Upsert(ctx context.Context, c LeaveCredit) (LeaveCredit, error)
	AppendHistory(ctx context.Context, item HistoryItem) (HistoryItem, error)
	ListHistory(ctx context.Context, creditID string) ([]HistoryItem, error)
}
