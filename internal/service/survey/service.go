package survey

import (
	"context"

	"github.com/opshub-hq/opshub-backend-go/internal/domain/survey"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
)

type SurveyServiceImpl struct {
	db *database.DB
	survey.SurveyRepository
}

func NewSurveyService(db *database.DB, surveyRepository survey.SurveyRepository) survey.SurveyService {
	return &SurveyServiceImpl{
		db:               db,
		SurveyRepository: surveyRepository,
	}
}

func (s *SurveyServiceImpl) Create(ctx context.Context, createdBy string, req survey.CreateSurveyRequest) (survey.SurveyResponse, error) {
	if err := req.Validate(); err != nil {
		return survey.SurveyResponse{}, err
	}

	created, err := s.SurveyRepository.Create(ctx, survey.Survey{
		Title:     req.Title,
		Question:  req.Question,
		Anonymous: req.Anonymous,
		CreatedBy: createdBy,
	})
	if err != nil {
		return survey.SurveyResponse{}, err
	}

	return toResponse(created), nil
}

func (s *SurveyServiceImpl) Get(ctx context.Context, id string) (survey.SurveyResponse, error) {
	sv, err := s.SurveyRepository.GetByID(ctx, id)
	if err != nil {
		return survey.SurveyResponse{}, err
	}
	return toResponse(sv), nil
}

func (s *SurveyServiceImpl) List(ctx context.Context) ([]survey.SurveyResponse, error) {
	surveys, err := s.SurveyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]survey.SurveyResponse, 0, len(surveys))
	for _, sv := range surveys {
		responses = append(responses, toResponse(sv))
	}

	return responses, nil
}

func (s *SurveyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.SurveyRepository.Delete(ctx, id)
}

func (s *SurveyServiceImpl) SubmitResponse(ctx context.Context, surveyID string, employeeID string, req survey.SubmitResponseRequest) (survey.SurveyResponse, error) {
	if err := req.Validate(); err != nil {
		return survey.SurveyResponse{}, err
	}

	sv, err := s.SurveyRepository.GetByID(ctx, surveyID)
	if err != nil {
		return survey.SurveyResponse{}, err
	}

	response := survey.Response{
		SurveyID: surveyID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	// Anonymous surveys never store the respondent and allow repeat
	// submissions; identified surveys enforce one response per employee.
	if !sv.Anonymous {
		responded, err := s.SurveyRepository.HasResponded(ctx, surveyID, employeeID)
		if err != nil {
			return survey.SurveyResponse{}, err
		}
		if responded {
			return survey.SurveyResponse{}, survey.ErrAlreadyResponded
		}
		response.EmployeeID = &employeeID
	}

	if _, err := s.SurveyRepository.AddResponse(ctx, response); err != nil {
		return survey.SurveyResponse{}, err
	}

	return s.Get(ctx, surveyID)
}

func toResponse(sv survey.Survey) survey.SurveyResponse {
	return survey.SurveyResponse{
		ID:            sv.ID,
		Title:         sv.Title,
		Question:      sv.Question,
		Anonymous:     sv.Anonymous,
		CreatedBy:     sv.CreatedBy,
		CreatedAt:     sv.CreatedAt.Format("2006-01-02 15:04:05"),
		ResponseCount: len(sv.Responses),
		AverageRating: survey.AverageRating(sv.Responses),
		Distribution:  survey.RatingDistribution(sv.Responses),
	}
}
