package nte

import (
	"context"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/nte"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type NTEServiceImpl struct {
	db *database.DB
	nte.RecordRepository
	employee.EmployeeRepository
}

func NewNTEService(
	db *database.DB,
	recordRepository nte.RecordRepository,
	employeeRepository employee.EmployeeRepository,
) nte.NTEService {
	return &NTEServiceImpl{
		db:                 db,
		RecordRepository:   recordRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *NTEServiceImpl) Create(ctx context.Context, req nte.CreateRecordRequest) (nte.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nte.RecordResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return nte.RecordResponse{}, err
	}

	created, err := s.RecordRepository.Create(ctx, nte.Record{
		EmployeeID: req.EmployeeID,
		Status:     nte.StatusPER,
		Offense:    req.Offense,
	})
	if err != nil {
		return nte.RecordResponse{}, err
	}

	return nte.ToResponse(created), nil
}

func (s *NTEServiceImpl) Get(ctx context.Context, id string) (nte.RecordResponse, error) {
	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return nte.RecordResponse{}, err
	}
	return nte.ToResponse(rec), nil
}

func (s *NTEServiceImpl) List(ctx context.Context, employeeID string) ([]nte.RecordResponse, error) {
	records, err := s.RecordRepository.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]nte.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, nte.ToResponse(rec))
	}

	return responses, nil
}

func (s *NTEServiceImpl) Update(ctx context.Context, id string, req nte.UpdateRecordRequest) (nte.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nte.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return nte.RecordResponse{}, err
	}

	if req.Status != nil {
		rec.Status = nte.Status(*req.Status)
	}
	if req.Explanation != nil {
		rec.Explanation = *req.Explanation
	}
	if req.Decision != nil {
		rec.Decision = *req.Decision
	}
	if req.EmployeeSignature != nil {
		rec.EmployeeSignature = req.EmployeeSignature
	}
	if req.SupervisorSignature != nil {
		rec.SupervisorSignature = req.SupervisorSignature
	}
	if req.HRSignature != nil {
		rec.HRSignature = req.HRSignature
	}

	if err := s.RecordRepository.Update(ctx, rec); err != nil {
		return nte.RecordResponse{}, err
	}

	return nte.ToResponse(rec), nil
}

func (s *NTEServiceImpl) Delete(ctx context.Context, id string) error {
	return s.RecordRepository.Delete(ctx, id)
}
