package memo

import "time"

type Memo struct {
	ID             string
	Title          string
	Body           string
	Department     string
	CreatedBy      string
	AcknowledgedBy []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Acknowledge appends userID with set semantics: acknowledging twice is a
// no-op. Returns true when the list changed.
func (m *Memo) Acknowledge(userID string) bool {
	for _, id := range m.AcknowledgedBy {
		if id == userID {
			return false
		}
	}
	m.AcknowledgedBy = append(m.AcknowledgedBy, userID)
	return true
}
