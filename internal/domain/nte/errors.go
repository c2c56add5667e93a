package nte

import "errors"

var (
	ErrRecordNotFound = errors.New("notice record not found")
)
