package roster

import "errors"

// Contract-violation errors. Business-rule outcomes are never errors; they are
// returned as Issues from the validator.
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time of day")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNotFound         = errors.New("not found")
)
