package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrSessionNotFound = errors.New("time session not found")
	ErrAlreadyTimedIn  = errors.New("an open time session already exists")
	ErrSessionClosed   = errors.New("time session is already closed")
	ErrNoOpenSession   = errors.New("no open time session")
)
