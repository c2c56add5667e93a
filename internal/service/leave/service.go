package leave

import (
	"context"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/leave"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.CreditRepository

	now func() time.Time
}

func NewLeaveService(db *database.DB, creditRepository leave.CreditRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		CreditRepository: creditRepository,
		now:              time.Now,
	}
}

func (s *LeaveServiceImpl) GetCredit(ctx context.Context, employeeID string) (leave.CreditResponse, error) {
	c, err := s.CreditRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.CreditResponse{}, err
	}
	return s.toResponse(c), nil
}

func (s *LeaveServiceImpl) ListCredits(ctx context.Context) ([]leave.CreditResponse, error) {
	credits, err := s.CreditRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.CreditResponse, 0, len(credits))
	for _, c := range credits {
		responses = append(responses, s.toResponse(c))
	}

	return responses, nil
}

func (s *LeaveServiceImpl) UpsertCredit(ctx context.Context, req leave.UpsertCreditRequest) (leave.CreditResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreditResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)

	credit := leave.LeaveCredit{
		EmployeeID:          req.EmployeeID,
		CurrentBalance:      req.CurrentBalance,
		StartingLeaveCredit: req.StartingLeaveCredit,
		StartDate:           startDate,
		EmploymentStatus:    req.EmploymentStatus,
	}
	if req.NextAccrualDate != "" {
		credit.NextAccrualDate, _ = validator.IsValidDate(req.NextAccrualDate)
	}

	upserted, err := s.CreditRepository.Upsert(ctx, credit)
	if err != nil {
		return leave.CreditResponse{}, err
	}

	// Re-read for the employee join and existing history.
	return s.GetCredit(ctx, upserted.EmployeeID)
}

func (s *LeaveServiceImpl) AppendHistory(ctx context.Context, employeeID string, req leave.AppendHistoryRequest) (leave.CreditResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreditResponse{}, err
	}

	credit, err := s.CreditRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.CreditResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if _, err := s.CreditRepository.AppendHistory(ctx, leave.HistoryItem{
		CreditID:    credit.ID,
		Date:        date,
		Description: req.Description,
		Days:        req.Days,
		Status:      leave.HistoryStatus(req.Status),
		TicketID:    req.TicketID,
	}); err != nil {
		return leave.CreditResponse{}, err
	}

	return s.GetCredit(ctx, employeeID)
}

func (s *LeaveServiceImpl) toResponse(c leave.LeaveCredit) leave.CreditResponse {
	resp := leave.CreditResponse{
		ID:                  c.ID,
		EmployeeID:          c.EmployeeID,
		EmployeeName:        c.EmployeeName,
		CurrentBalance:      c.CurrentBalance,
		StartingLeaveCredit: c.StartingLeaveCredit,
		StartDate:           c.StartDate.Format("2006-01-02"),
		NextAccrualDate:     c.NextAccrualDate.Format("2006-01-02"),
		EmploymentStatus:    c.EmploymentStatus,
		TenureDays:          leave.TenureDays(c.StartDate, s.now()),
		UsedDays:            leave.UsedDays(c.History),
		History:             make([]leave.HistoryResponse, 0, len(c.History)),
	}

	for _, item := range c.History {
		resp.History = append(resp.History, leave.HistoryResponse{
			ID:          item.ID,
			Date:        item.Date.Format("2006-01-02"),
			Description: item.Description,
			Days:        item.Days,
			Status:      string(item.Status),
			TicketID:    item.TicketID,
		})
	}

	return resp
}
