package nte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   int
	}{
		{"PER has one page", StatusPER, 1},
		{"PNOD has two pages", StatusPNOD, 2},
		{"PNODA has three pages", StatusPNODA, 3},
		{"FTHR has three pages", StatusFTHR, 3},
		{"unknown status defaults to one page", Status("something-else"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.status))
		})
	}
}

func TestPager_BoundsAreNoOps(t *testing.T) {
	p := NewPager(StatusPNODA)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 3, p.PageCount())

	// Prev on the first page stays on the first page.
	assert.Equal(t, 1, p.Prev())

	assert.Equal(t, 2, p.Next())
	assert.Equal(t, 3, p.Next())

	// Next on the last page stays on the last page.
	assert.Equal(t, 3, p.Next())
}

func TestPager_SetStatusClampsCurrentPage(t *testing.T) {
	p := NewPager(StatusFTHR)
	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Current())

	// Dropping to a one-page status pulls the current page back into range.
	p.SetStatus(StatusPER)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 1, p.PageCount())
}
