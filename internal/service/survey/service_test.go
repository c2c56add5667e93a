package survey

import (
	"context"
	"testing"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurveyRepo struct {
	surveys   map[string]survey.Survey
	responses map[string][]survey.Response

	getByIDCalls int
}

func newFakeSurveyRepo() *fakeSurveyRepo {
	return &fakeSurveyRepo{
		surveys:   make(map[string]survey.Survey),
		responses: make(map[string][]survey.Response),
	}
}

func (f *fakeSurveyRepo) Create(ctx context.Context, s survey.Survey) (survey.Survey, error) {
	s.ID = "survey-" + s.Title
	f.surveys[s.ID] = s
	return s, nil
}

func (f *fakeSurveyRepo) GetByID(ctx context.Context, id string) (survey.Survey, error) {
	f.getByIDCalls++
	s, ok := f.surveys[id]
	if !ok {
		return survey.Survey{}, survey.ErrSurveyNotFound
	}
	s.Responses = f.responses[id]
	return s, nil
}

func (f *fakeSurveyRepo) List(ctx context.Context) ([]survey.Survey, error) {
	out := make([]survey.Survey, 0, len(f.surveys))
	for id, s := range f.surveys {
		s.Responses = f.responses[id]
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSurveyRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.surveys[id]; !ok {
		return survey.ErrSurveyNotFound
	}
	delete(f.surveys, id)
	return nil
}

func (f *fakeSurveyRepo) AddResponse(ctx context.Context, r survey.Response) (survey.Response, error) {
	f.responses[r.SurveyID] = append(f.responses[r.SurveyID], r)
	return r, nil
}

func (f *fakeSurveyRepo) ListResponses(ctx context.Context, surveyID string) ([]survey.Response, error) {
	return f.responses[surveyID], nil
}

func (f *fakeSurveyRepo) HasResponded(ctx context.Context, surveyID string, employeeID string) (bool, error) {
	for _, r := range f.responses[surveyID] {
		if r.EmployeeID != nil && *r.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func seedSurvey(repo *fakeSurveyRepo, title string, anonymous bool, ratings ...int) string {
	s, _ := repo.Create(context.Background(), survey.Survey{Title: title, Question: "?", Anonymous: anonymous})
	for _, rating := range ratings {
		repo.responses[s.ID] = append(repo.responses[s.ID], survey.Response{SurveyID: s.ID, Rating: rating})
	}
	return s.ID
}

func TestSurveyService_List_AggregatesWithoutPerSurveyLookups(t *testing.T) {
	repo := newFakeSurveyRepo()
	seedSurvey(repo, "pulse", false, 6, 8, 10)
	seedSurvey(repo, "empty", false)
	svc := NewSurveyService(nil, repo)

	responses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)

	byTitle := make(map[string]survey.SurveyResponse)
	for _, r := range responses {
		byTitle[r.Title] = r
	}

	pulse := byTitle["pulse"]
	assert.Equal(t, 3, pulse.ResponseCount)
	assert.InDelta(t, 8.0, pulse.AverageRating, 0.001)
	assert.Equal(t, 0, byTitle["empty"].ResponseCount)

	// The list call carries the responses; no per-survey fetches.
	assert.Equal(t, 0, repo.getByIDCalls)
}

func TestSurveyService_SubmitResponse_DuplicateRejected(t *testing.T) {
	repo := newFakeSurveyRepo()
	id := seedSurvey(repo, "pulse", false)
	svc := NewSurveyService(nil, repo)

	_, err := svc.SubmitResponse(context.Background(), id, "emp-1", survey.SubmitResponseRequest{Rating: 7})
	require.NoError(t, err)

	_, err = svc.SubmitResponse(context.Background(), id, "emp-1", survey.SubmitResponseRequest{Rating: 9})
	assert.ErrorIs(t, err, survey.ErrAlreadyResponded)
}

func TestSurveyService_SubmitResponse_AnonymousAllowsRepeatsAndStoresNoIdentity(t *testing.T) {
	repo := newFakeSurveyRepo()
	id := seedSurvey(repo, "anon", true)
	svc := NewSurveyService(nil, repo)

	_, err := svc.SubmitResponse(context.Background(), id, "emp-1", survey.SubmitResponseRequest{Rating: 3})
	require.NoError(t, err)
	resp, err := svc.SubmitResponse(context.Background(), id, "emp-1", survey.SubmitResponseRequest{Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ResponseCount)
	for _, r := range repo.responses[id] {
		assert.Nil(t, r.EmployeeID)
	}
}
