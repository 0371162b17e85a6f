package settlement

import "errors"

var (
	// ErrInvalidRange means period start is after period end. Rejected before
	// any fetch occurs.
	ErrInvalidRange = errors.New("period start is after period end")

	// ErrUpstreamUnavailable means the ERP could not be reached or timed out.
	// Fatal to the current computation.
	ErrUpstreamUnavailable = errors.New("upstream reporting service unavailable")

	// ErrDataFormat means an ERP response could not be parsed into the
	// expected shape. Fatal: running on a half-understood payload risks wrong
	// payroll.
	ErrDataFormat = errors.New("unexpected data format from upstream")

	// ErrMissingProfile marks an employee with attendance but no configured
	// pay profile. Non-fatal: the employee is skipped and reported.
	ErrMissingProfile = errors.New("employee has no pay profile")
)
