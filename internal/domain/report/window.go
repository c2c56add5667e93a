package report

import "time"

// ResolveWindow derives the inclusive reporting window from the request.
// Weekly windows run Monday through Sunday of the ISO week containing the
// anchor date. A dateRange request missing either bound falls back to the
// current week.
func ResolveWindow(req AbsenteeismRequest, now time.Time) Window {
	anchor := now
	if req.CurrentDate != "" {
		if t, err := time.Parse("2006-01-02", req.CurrentDate); err == nil {
			anchor = t
		}
	}

	switch ViewMode(req.ViewMode) {
	case ViewMonthly:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return Window{Start: start, End: end}
	case ViewDateRange:
		from, errFrom := time.Parse("2006-01-02", req.FromDate)
		to, errTo := time.Parse("2006-01-02", req.ToDate)
		if errFrom == nil && errTo == nil && !to.Before(from) {
			return Window{Start: from, End: to}
		}
		return weekOf(anchor)
	default:
		return weekOf(anchor)
	}
}

// weekOf returns the Monday-through-Sunday week containing t.
func weekOf(t time.Time) Window {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}
