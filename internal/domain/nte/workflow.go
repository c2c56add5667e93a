package nte

// PageCount maps a status to the number of renderable document pages.
// Unrecognized statuses default to one page.
func PageCount(status Status) int {
	switch status {
	case StatusPER:
		return 1
	case StatusPNOD:
		return 2
	case StatusPNODA, StatusFTHR:
		return 3
	default:
		return 1
	}
}

// Pager is a bounded page counter over a record's renderable pages. Next on
// the last page and Prev on page 1 are no-ops.
type Pager struct {
	current   int
	pageCount int
}

func NewPager(status Status) Pager {
	return Pager{current: 1, pageCount: PageCount(status)}
}

func (p *Pager) Current() int {
	return p.current
}

func (p *Pager) PageCount() int {
	return p.pageCount
}

func (p *Pager) Next() int {
	p.current = clamp(p.current+1, 1, p.pageCount)
	return p.current
}

func (p *Pager) Prev() int {
	p.current = clamp(p.current-1, 1, p.pageCount)
	return p.current
}

// SetStatus re-derives the page bound when the record's status changes and
// clamps the current page into the new range.
func (p *Pager) SetStatus(status Status) {
	p.pageCount = PageCount(status)
	p.current = clamp(p.current, 1, p.pageCount)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
