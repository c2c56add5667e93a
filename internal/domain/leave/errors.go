package leave

import "errors"

var (
	// A missing credit record is an expected state: the caller starts the
	// create flow instead of reporting a failure.
	ErrCreditNotFound = errors.New("leave credit record not found")
)
