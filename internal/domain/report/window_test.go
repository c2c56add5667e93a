package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestResolveWindow_Weekly(t *testing.T) {
	// 2024-01-10 is a Wednesday; the ISO week runs Mon 08 through Sun 14.
	w := ResolveWindow(AbsenteeismRequest{ViewMode: "weekly", CurrentDate: "2024-01-10"}, time.Now())
	assert.Equal(t, date("2024-01-08"), w.Start)
	assert.Equal(t, date("2024-01-14"), w.End)
}

func TestResolveWindow_WeeklyOnMondayAndSunday(t *testing.T) {
	// Monday anchors its own week.
	w := ResolveWindow(AbsenteeismRequest{ViewMode: "weekly", CurrentDate: "2024-01-08"}, time.Now())
	assert.Equal(t, date("2024-01-08"), w.Start)

	// Sunday still belongs to the week that started the previous Monday.
	w = ResolveWindow(AbsenteeismRequest{ViewMode: "weekly", CurrentDate: "2024-01-14"}, time.Now())
	assert.Equal(t, date("2024-01-08"), w.Start)
	assert.Equal(t, date("2024-01-14"), w.End)
}

func TestResolveWindow_Monthly(t *testing.T) {
	w := ResolveWindow(AbsenteeismRequest{ViewMode: "monthly", CurrentDate: "2024-02-15"}, time.Now())
	assert.Equal(t, date("2024-02-01"), w.Start)
	assert.Equal(t, date("2024-02-29"), w.End) // leap year
}

func TestResolveWindow_DateRange(t *testing.T) {
	w := ResolveWindow(AbsenteeismRequest{
		ViewMode: "dateRange",
		FromDate: "2024-03-01",
		ToDate:   "2024-03-10",
	}, time.Now())
	assert.Equal(t, date("2024-03-01"), w.Start)
	assert.Equal(t, date("2024-03-10"), w.End)
}

func TestResolveWindow_DateRangeFallsBackToCurrentWeek(t *testing.T) {
	now := date("2024-01-10")

	tests := []struct {
		name string
		req  AbsenteeismRequest
	}{
		{"missing both bounds", AbsenteeismRequest{ViewMode: "dateRange"}},
		{"missing to", AbsenteeismRequest{ViewMode: "dateRange", FromDate: "2024-03-01"}},
		{"inverted range", AbsenteeismRequest{ViewMode: "dateRange", FromDate: "2024-03-10", ToDate: "2024-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWindow(tt.req, now)
			assert.Equal(t, date("2024-01-08"), w.Start)
			assert.Equal(t, date("2024-01-14"), w.End)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Start: date("2024-01-08"), End: date("2024-01-14")}

	assert.True(t, w.Contains(date("2024-01-08")))
	assert.True(t, w.Contains(date("2024-01-14")))
	// Time-of-day is ignored on the inclusive bounds.
	assert.True(t, w.Contains(date("2024-01-14").Add(23*time.Hour)))
	assert.False(t, w.Contains(date("2024-01-07")))
	assert.False(t, w.Contains(date("2024-01-15")))
}
