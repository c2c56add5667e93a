package leave

import "context"

type LeaveService interface {
	// GetCredit returns ErrCreditNotFound when no record exists yet; callers
	// treat that as the signal to start the create flow.
	GetCredit(ctx context.Context, employeeID string) (CreditResponse, error)
	ListCredits(ctx context.Context) ([]CreditResponse, error)
	UpsertCredit(ctx context.Context, req UpsertCreditRequest) (CreditResponse, error)
	AppendHistory(ctx context.Context, employeeID string, req AppendHistoryRequest) (CreditResponse, error)
}
