package survey

import "context"

type SurveyRepository interface {
	Create(ctx context.Context, s Survey) (Survey, error)
	GetByID(ctx context.Context, id string) (Survey, error)
	// List returns all surveys with their responses attached.
	List(ctx context.Context) ([]Survey, error)
	Delete(ctx context.Context, id string) error

	AddResponse(ctx context.Context, r Response) (Response, error)
	ListResponses(ctx context.Context, surveyID string) ([]Response, error)
	HasResponded(ctx context.Context, surveyID string, employeeID string) (bool, error)
}
