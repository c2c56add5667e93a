package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingDistribution(t *testing.T) {
	responses := []Response{
		{Rating: 0},
		{Rating: 7},
		{Rating: 7},
		{Rating: 10},
		{Rating: 15}, // out of range, ignored
	}

	dist := RatingDistribution(responses)
	assert.Equal(t, 1, dist[0])
	assert.Equal(t, 2, dist[7])
	assert.Equal(t, 1, dist[10])

	var total int
	for _, n := range dist {
		total += n
	}
	assert.Equal(t, 4, total)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	responses := []Response{{Rating: 6}, {Rating: 8}, {Rating: 10}}
	assert.InDelta(t, 8.0, AverageRating(responses), 0.001)
}
