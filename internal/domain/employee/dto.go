package employee

import (
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department,omitempty"`
	StoreID    *string `json:"store_id,omitempty"`
	Active     bool    `json:"active"`

	// Profile fields are nil when no pay profile is configured yet.
	Scheme *string          `json:"scheme,omitempty"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
}

// UpsertProfileRequest assigns or replaces an employee's pay scheme.
type UpsertProfileRequest struct {
	EmployeeID string          `json:"-"`
	Scheme     string          `json:"scheme"`
	Rate       decimal.Decimal `json:"rate"`
}

func (r *UpsertProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	scheme := settlement.PayScheme(r.Scheme)
	if !scheme.Valid() {
		errs = append(errs, validator.ValidationError{Field: "scheme", Message: "must be monthly, hourly, per_shift, or revenue_percent"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if scheme == settlement.SchemeRevenuePercent && r.Rate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "percentage must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
