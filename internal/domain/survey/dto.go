package survey

import (
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/validator"
)

type CreateSurveyRequest struct {
	Title     string `json:"title"`
	Question  string `json:"question"`
	Anonymous bool   `json:"anonymous"`
}

func (r *CreateSurveyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Question) {
		errs = append(errs, validator.ValidationError{
			Field:   "question",
			Message: "question is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitResponseRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *SubmitResponseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidRating(r.Rating) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 0 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SurveyResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Question      string  `json:"question"`
	Anonymous     bool    `json:"anonymous"`
	CreatedBy     string  `json:"created_by"`
	CreatedAt     string  `json:"created_at"`
	ResponseCount int     `json:"response_count"`
	AverageRating float64 `json:"average_rating"`
	Distribution  [11]int `json:"distribution"`
}
