package memo

import (
	"context"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type MemoServiceImpl struct {
	db *database.DB
	memo.MemoRepository
}

func NewMemoService(db *database.DB, memoRepository memo.MemoRepository) memo.MemoService {
	return &MemoServiceImpl{
		db:             db,
		MemoRepository: memoRepository,
	}
}

func (s *MemoServiceImpl) Create(ctx context.Context, createdBy string, req memo.CreateMemoRequest) (memo.MemoResponse, error) {
	if err := req.Validate(); err != nil {
		return memo.MemoResponse{}, err
	}

	created, err := s.MemoRepository.Create(ctx, memo.Memo{
		Title:          req.Title,
		Body:           req.Body,
		Department:     req.Department,
		CreatedBy:      createdBy,
		AcknowledgedBy: []string{},
	})
	if err != nil {
		return memo.MemoResponse{}, err
	}

	return memo.ToResponse(created), nil
}

func (s *MemoServiceImpl) Get(ctx context.Context, id string) (memo.MemoResponse, error) {
	m, err := s.MemoRepository.GetByID(ctx, id)
	if err != nil {
		return memo.MemoResponse{}, err
	}
	return memo.ToResponse(m), nil
}

func (s *MemoServiceImpl) List(ctx context.Context, filter memo.MemoFilter) ([]memo.MemoResponse, int64, error) {
	memos, total, err := s.MemoRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]memo.MemoResponse, 0, len(memos))
	for _, m := range memos {
		responses = append(responses, memo.ToResponse(m))
	}

	return responses, total, nil
}

func (s *MemoServiceImpl) Update(ctx context.Context, id string, req memo.UpdateMemoRequest) (memo.MemoResponse, error) {
	if err := req.Validate(); err != nil {
		return memo.MemoResponse{}, err
	}

	m, err := s.MemoRepository.GetByID(ctx, id)
	if err != nil {
		return memo.MemoResponse{}, err
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Body != nil {
		m.Body = *req.Body
	}

	if err := s.MemoRepository.Update(ctx, m); err != nil {
		return memo.MemoResponse{}, err
	}

	return memo.ToResponse(m), nil
}

func (s *MemoServiceImpl) Acknowledge(ctx context.Context, id string, userID string) (memo.MemoResponse, error) {
	m, err := s.MemoRepository.GetByID(ctx, id)
	if err != nil {
		return memo.MemoResponse{}, err
	}

	// Only persist when the acknowledgment set actually changed.
	if m.Acknowledge(userID) {
		if err := s.MemoRepository.Update(ctx, m); err != nil {
			return memo.MemoResponse{}, err
		}
	}

	return memo.ToResponse(m), nil
}

func (s *MemoServiceImpl) Delete(ctx context.Context, id string) error {
	return s.MemoRepository.Delete(ctx, id)
}
