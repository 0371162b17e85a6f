package response

import (
	"errors"
	"net/http"

	"github.com/pizzayolo/backoffice-go/internal/domain/auth"
	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/domain/user"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Settlement domain errors
	case errors.Is(err, settlement.ErrInvalidRange):
		BadRequest(w, "Period start must not be after period end", nil)
	case errors.Is(err, settlement.ErrUpstreamUnavailable):
		ServiceUnavailable(w, "ERP is unreachable, try again later")
	case errors.Is(err, settlement.ErrDataFormat):
		ServiceUnavailable(w, "ERP returned a malformed response")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Pay profile not found")
	case errors.Is(err, employee.ErrInvalidScheme), errors.Is(err, employee.ErrNegativeRate), errors.Is(err, employee.ErrPercentOutOfRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
