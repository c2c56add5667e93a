package report

import (
	"context"
	"fmt"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/attendance"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/employee"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/report"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/schedule"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	schedule.ScheduleRepository
	attendance.RecordRepository
	attendance.SessionRepository
	ticket.TicketRepository
	survey.SurveyRepository
	memo.MemoRepository

	now func() time.Time
}

func NewReportService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	scheduleRepository schedule.ScheduleRepository,
	recordRepository attendance.RecordRepository,
	sessionRepository attendance.SessionRepository,
	ticketRepository ticket.TicketRepository,
	surveyRepository survey.SurveyRepository,
	memoRepository memo.MemoRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		ScheduleRepository: scheduleRepository,
		RecordRepository:   recordRepository,
		SessionRepository:  sessionRepository,
		TicketRepository:   ticketRepository,
		SurveyRepository:   surveyRepository,
		MemoRepository:     memoRepository,
		now:                time.Now,
	}
}

func (s *ReportServiceImpl) Absenteeism(ctx context.Context, req report.AbsenteeismRequest) (report.AbsenteeismResponse, error) {
	if err := req.Validate(); err != nil {
		return report.AbsenteeismResponse{}, err
	}

	window := report.ResolveWindow(req, s.now())
	from := window.Start.Format("2006-01-02")
	to := window.End.Format("2006-01-02")

	var (
		employees []employee.Employee
		entries   []schedule.Entry
		records   []attendance.Record
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		all, _, err := s.EmployeeRepository.List(gctx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		employees = all
		return nil
	})

	g.Go(func() error {
		var err error
		entries, err = s.ScheduleRepository.List(gctx, schedule.ScheduleFilter{From: from, To: to})
		if err != nil {
			return fmt.Errorf("failed to load schedule entries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.RecordRepository.List(gctx, attendance.RecordFilter{From: from, To: to})
		if err != nil {
			return fmt.Errorf("failed to load attendance records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.AbsenteeismResponse{}, err
	}

	if len(req.EmployeeIDs) > 0 {
		employees = filterEmployees(employees, req.EmployeeIDs)
	}

	return Aggregate(window, employees, entries, records, req.TopN), nil
}

func filterEmployees(employees []employee.Employee, ids []string) []employee.Employee {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	filtered := employees[:0]
	for _, e := range employees {
		if keep[e.ID] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
