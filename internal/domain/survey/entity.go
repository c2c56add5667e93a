package survey

import "time"

type Survey struct {
	ID        string
	Title     string
	Question  string
	Anonymous bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	Responses []Response
}

// Response carries a 0-10 rating. Anonymous surveys store no employee id.
type Response struct {
	ID         string
	SurveyID   string
	EmployeeID *string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// RatingDistribution counts responses per rating value 0..10.
func RatingDistribution(responses []Response) [11]int {
	var dist [11]int
	for _, r := range responses {
		if r.Rating >= 0 && r.Rating <= 10 {
			dist[r.Rating]++
		}
	}
	return dist
}

// AverageRating returns 0 for an empty response set.
func AverageRating(responses []Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	var sum int
	for _, r := range responses {
		sum += r.Rating
	}
	return float64(sum) / float64(len(responses))
}
