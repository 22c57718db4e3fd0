package errors

import "errors"

var (
	ErrNotFound = errors.New("working hours not found")

	ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
)
