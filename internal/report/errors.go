package report

import "errors"

var (
	ErrNotFound     = errors.New("report: not found")
	ErrMissingField = errors.New("report: missing field")
	ErrInvalidValue = errors.New("report: invalid value")
)
