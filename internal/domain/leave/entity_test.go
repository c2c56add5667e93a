package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsedDays_CountsOnlyApproved(t *testing.T) {
	history := []HistoryItem{
		{Days: 5, Status: HistoryApproved},
		{Days: 3, Status: HistoryApproved},
		{Days: 2, Status: HistoryPending},
		{Days: 1, Status: HistoryRejected},
	}

	assert.Equal(t, 8.0, UsedDays(history))
}

func TestUsedDays_EmptyHistory(t *testing.T) {
	assert.Equal(t, 0.0, UsedDays(nil))
}

func TestTenureDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same day", start, 0},
		{"ninety days later", start.AddDate(0, 0, 90), 90},
		{"now before start clamps to zero", start.AddDate(0, 0, -5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TenureDays(start, tt.now))
		})
	}
}
