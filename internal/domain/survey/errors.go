package survey

import "errors"

var (
	ErrSurveyNotFound   = errors.New("survey not found")
	ErrAlreadyResponded = errors.New("employee has already responded to this survey")
)
