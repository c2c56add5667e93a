package nte

import "context"

type NTEService interface {
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, employeeID string) ([]RecordResponse, error)
	Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}
