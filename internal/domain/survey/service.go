package survey

import "context"

type SurveyService interface {
	Create(ctx context.Context, createdBy string, req CreateSurveyRequest) (SurveyResponse, error)
	Get(ctx context.Context, id string) (SurveyResponse, error)
	List(ctx context.Context) ([]SurveyResponse, error)
	Delete(ctx context.Context, id string) error

	// SubmitResponse stores one rating per employee per survey. Anonymous
	// surveys store no employee id and skip the duplicate check.
	SubmitResponse(ctx context.Context, surveyID string, employeeID string, req SubmitResponseRequest) (SurveyResponse, error)
}
