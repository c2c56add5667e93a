package memo

import "errors"

var (
	ErrMemoNotFound = errors.New("memo not found")
)
