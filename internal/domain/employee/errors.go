package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProfileNotFound  = errors.New("pay profile not found")
	ErrInvalidScheme    = errors.New("unknown pay scheme")
	ErrNegativeRate     = errors.New("rate must be non-negative")
	ErrPercentOutOfRange = errors.New("percentage rate must be between 0 and 100")
)
