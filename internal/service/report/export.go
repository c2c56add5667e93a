package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/memo"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/report"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/domain/ticket"
)

// exportTable is the common shape every export kind reduces to before
// rendering: a few summary lines, a header row, and data rows.
type exportTable struct {
	Title   string
	Summary []string
	Header  []string
	Rows    [][]string
}

func (s *ReportServiceImpl) ExportReport(ctx context.Context, req report.ExportRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	var (
		table exportTable
		err   error
	)

	switch req.Kind {
	case "tickets":
		table, err = s.ticketTable(ctx, req)
	case "time":
		table, err = s.timeTable(ctx, req)
	case "surveys":
		table, err = s.surveyTable(ctx)
	case "memos":
		table, err = s.memoTable(ctx, req)
	}
	if err != nil {
		return report.Export{}, err
	}

	stamp := s.now().Format("2006-01-02")
	switch report.ExportFormat(req.Format) {
	case report.FormatPDF:
		data, err := renderPDF(table, s.now())
		if err != nil {
			return report.Export{}, err
		}
		return report.Export{
			Filename:    fmt.Sprintf("%s-report-%s.pdf", req.Kind, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		data, err := renderCSV(table)
		if err != nil {
			return report.Export{}, err
		}
		return report.Export{
			Filename:    fmt.Sprintf("%s-report-%s.csv", req.Kind, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func (s *ReportServiceImpl) ticketTable(ctx context.Context, req report.ExportRequest) (exportTable, error) {
	tickets, _, err := s.TicketRepository.List(ctx, ticket.TicketFilter{
		Department: req.Department,
		Status:     req.Status,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		return exportTable{}, fmt.Errorf("failed to load tickets for export: %w", err)
	}

	summary := TicketSummarize(tickets)

	table := exportTable{
		Title: "Ticket Report",
		Summary: []string{
			fmt.Sprintf("Total tickets: %d", summary.Total),
			fmt.Sprintf("Average resolution: %.1f minutes", summary.AvgResolutionMinutes),
		},
		Header: []string{"Subject", "Status", "Category", "Department", "Creator", "Assignee", "Created", "Resolved"},
	}

	for _, t := range tickets {
		resolved := ""
		if t.ResolvedAt != nil {
			resolved = t.ResolvedAt.Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []string{
			t.Subject,
			string(t.Status),
			t.Category,
			t.Department,
			strOrEmpty(t.CreatorName),
			strOrEmpty(t.AssigneeName),
			t.CreatedAt.Format("2006-01-02 15:04"),
			resolved,
		})
	}

	return table, nil
}

func (s *ReportServiceImpl) timeTable(ctx context.Context, req report.ExportRequest) (exportTable, error) {
	sessions, err := s.SessionRepository.List(ctx, "", req.From, req.To)
	if err != nil {
		return exportTable{}, fmt.Errorf("failed to load time sessions for export: %w", err)
	}

	var total time.Duration
	now := s.now()

	table := exportTable{
		Title:  "Time Tracking Report",
		Header: []string{"Employee", "Time In", "Time Out", "Hours"},
	}

	for _, sess := range sessions {
		elapsed := sess.Elapsed(now)
		total += elapsed

		timeOut := "open"
		if sess.TimeOut != nil {
			timeOut = sess.TimeOut.Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []string{
			sess.EmployeeID,
			sess.TimeIn.Format("2006-01-02 15:04"),
			timeOut,
			fmt.Sprintf("%.2f", elapsed.Hours()),
		})
	}

	table.Summary = []string{
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Total hours: %.2f", total.Hours()),
	}

	return table, nil
}

func (s *ReportServiceImpl) surveyTable(ctx context.Context) (exportTable, error) {
	surveys, err := s.SurveyRepository.List(ctx)
	if err != nil {
		return exportTable{}, fmt.Errorf("failed to load surveys for export: %w", err)
	}

	table := exportTable{
		Title:  "Survey Report",
		Header: []string{"Title", "Question", "Anonymous", "Responses", "Average Rating"},
	}

	var totalResponses int
	for _, sv := range surveys {
		responses, err := s.SurveyRepository.ListResponses(ctx, sv.ID)
		if err != nil {
			return exportTable{}, err
		}
		totalResponses += len(responses)

		table.Rows = append(table.Rows, []string{
			sv.Title,
			sv.Question,
			fmt.Sprintf("%t", sv.Anonymous),
			fmt.Sprintf("%d", len(responses)),
			fmt.Sprintf("%.2f", survey.AverageRating(responses)),
		})
	}

	table.Summary = []string{
		fmt.Sprintf("Surveys: %d", len(surveys)),
		fmt.Sprintf("Total responses: %d", totalResponses),
	}

	return table, nil
}

func (s *ReportServiceImpl) memoTable(ctx context.Context, req report.ExportRequest) (exportTable, error) {
	memos, total, err := s.MemoRepository.List(ctx, memoFilter(req))
	if err != nil {
		return exportTable{}, fmt.Errorf("failed to load memos for export: %w", err)
	}

	table := exportTable{
		Title:   "Memo Report",
		Summary: []string{fmt.Sprintf("Total memos: %d", total)},
		Header:  []string{"Title", "Department", "Acknowledgments", "Created"},
	}

	for _, m := range memos {
		table.Rows = append(table.Rows, []string{
			m.Title,
			m.Department,
			fmt.Sprintf("%d", len(m.AcknowledgedBy)),
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return table, nil
}

func memoFilter(req report.ExportRequest) memo.MemoFilter {
	return memo.MemoFilter{
		Department: req.Department,
		From:       req.From,
		To:         req.To,
	}
}

// TicketSummarize computes the header block of a ticket export. Resolution
// time only counts tickets that carry a resolution timestamp.
func TicketSummarize(tickets []ticket.Ticket) report.TicketSummary {
	summary := report.TicketSummary{
		Total:      len(tickets),
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
	}

	var resolved int
	var totalMinutes float64
	for _, t := range tickets {
		summary.ByCategory[t.Category]++
		summary.ByStatus[string(t.Status)]++

		if t.ResolvedAt != nil {
			resolved++
			totalMinutes += t.ResolvedAt.Sub(t.CreatedAt).Minutes()
		}
	}

	if resolved > 0 {
		summary.AvgResolutionMinutes = totalMinutes / float64(resolved)
	}

	return summary
}

func renderCSV(table exportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, line := range table.Summary {
		if err := w.Write([]string{line}); err != nil {
			return nil, fmt.Errorf("failed to write csv summary: %w", err)
		}
	}
	if err := w.Write(table.Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderPDF(table exportTable, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageWidth := 277.0

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 10, table.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, 6, fmt.Sprintf("Generated: %s", now.Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 11)
	for _, line := range table.Summary {
		pdf.CellFormat(pageWidth, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	colWidth := pageWidth / float64(len(table.Header))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for _, h := range table.Header {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 6, truncate(cell, 30), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
