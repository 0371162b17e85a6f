package settlement

import (
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ReportRequest carries the operator-selected period. Dates are accepted in
// either ISO-8601 (2006-01-02) or day-first (02.01.2006) form, since the chat
// layer and the ERP disagree on date representation.
type ReportRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	StoreID string `json:"store_id,omitempty"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.ParseFlexibleDate(r.From)
	if r.From == "" || !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD or DD.MM.YYYY form"})
	}
	to, okTo := validator.ParseFlexibleDate(r.To)
	if r.To == "" || !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD or DD.MM.YYYY form"})
	}

	if len(errs) > 0 {
		return errs
	}

	if from.After(to) {
		return ErrInvalidRange
	}
	return nil
}

// Period converts the validated request bounds. Call Validate first.
func (r *ReportRequest) Period() (Period, error) {
	if err := r.Validate(); err != nil {
		return Period{}, err
	}
	from, _ := validator.ParseFlexibleDate(r.From)
	to, _ := validator.ParseFlexibleDate(r.To)
	return Period{From: from, To: to}, nil
}

type BasisResponse struct {
	Hours         decimal.Decimal `json:"hours"`
	Shifts        int             `json:"shifts"`
	AttendedDays  int             `json:"attended_days"`
	ScheduledDays int             `json:"scheduled_days"`
	RevenueShare  decimal.Decimal `json:"revenue_share"`
}

type LineResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Scheme       string          `json:"scheme"`
	Basis        BasisResponse   `json:"basis"`
	Gross        decimal.Decimal `json:"gross"`
}

// ReportResponse is the HTTP-facing shape of a settlement run: the structured
// result plus its formatted text rendering for the chat layer.
type ReportResponse struct {
	PeriodFrom      string          `json:"period_from"`
	PeriodTo        string          `json:"period_to"`
	Lines           []LineResponse  `json:"lines"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	UnmatchedShifts []string        `json:"unmatched_shifts,omitempty"`
	MissingProfiles []string        `json:"missing_profiles,omitempty"`
	Text            string          `json:"text"`
}
