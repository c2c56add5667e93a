package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemo_Acknowledge(t *testing.T) {
	m := Memo{ID: "m1"}

	assert.True(t, m.Acknowledge("user-1"))
	assert.True(t, m.Acknowledge("user-2"))
	assert.Equal(t, []string{"user-1", "user-2"}, m.AcknowledgedBy)

	// Acknowledging twice is a no-op.
	assert.False(t, m.Acknowledge("user-1"))
	assert.Len(t, m.AcknowledgedBy, 2)
}
