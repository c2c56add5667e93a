package report

import "context"

type ReportService interface {
	Absenteeism(ctx context.Context, req AbsenteeismRequest) (AbsenteeismResponse, error)
	ExportReport(ctx context.Context, req ExportRequest) (Export, error)
}
