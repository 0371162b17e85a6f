package balance

import (
	"time"

	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// BalanceRequest asks for the cumulative supplier balance as of a date.
// An empty date means today.
type BalanceRequest struct {
	Date string `json:"date,omitempty"`
}

func (r *BalanceRequest) Validate() error {
	if r.Date == "" {
		return nil
	}
	if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		return validator.ValidationErrors{
			{Field: "date", Message: "must be a date in YYYY-MM-DD or DD.MM.YYYY form"},
		}
	}
	return nil
}

// AsOf resolves the requested date, defaulting to the current day in UTC.
// Call Validate first.
func (r *BalanceRequest) AsOf() time.Time {
	if r.Date == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	asOf, _ := validator.ParseFlexibleDate(r.Date)
	return asOf
}

type EntryResponse struct {
	Counterparty string          `json:"counterparty"`
	Incoming     decimal.Decimal `json:"incoming"`
	Outgoing     decimal.Decimal `json:"outgoing"`
	Balance      decimal.Decimal `json:"balance"`
}

type BalanceResponse struct {
	Date          string          `json:"date"`
	Entries       []EntryResponse `json:"entries"`
	TotalIncoming decimal.Decimal `json:"total_incoming"`
	TotalOutgoing decimal.Decimal `json:"total_outgoing"`
	Total         decimal.Decimal `json:"total"`
	Text          string          `json:"text"`
}
