package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive calendar date range. A single-day report has
// From == To. Only the date part of the bounds is significant.
type Period struct {
	From time.Time
	To   time.Time
}

// Days returns the number of calendar days covered by the period, inclusive.
func (p Period) Days() int {
	from := truncateToDay(p.From)
	to := truncateToDay(p.To)
	return int(to.Sub(from).Hours()/24) + 1
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.From)) && !d.After(truncateToDay(p.To))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PayScheme identifies the formula family used to derive an employee's gross
// pay. Exactly one scheme applies per employee per settlement period.
type PayScheme string

const (
	SchemeMonthly        PayScheme = "monthly"
	SchemeHourly         PayScheme = "hourly"
	SchemePerShift       PayScheme = "per_shift"
	SchemeRevenuePercent PayScheme = "revenue_percent"
)

// Valid reports whether s is one of the four known schemes.
func (s PayScheme) Valid() bool {
	switch s {
	case SchemeMonthly, SchemeHourly, SchemePerShift, SchemeRevenuePercent:
		return true
	}
	return false
}

// PayProfile holds an employee's compensation rule. Rate is scheme-specific:
// a fixed monthly amount, an hourly rate, a per-shift amount, or a percentage
// in [0,100] of matched shift revenue.
type PayProfile struct {
	EmployeeID string
	Scheme     PayScheme
	Rate       decimal.Decimal
}

// AttendanceRecord is one employee's presence on one shift. Hours == 0 with a
// present ShiftID means scheduled-but-unworked, which is distinct from having
// no record at all.
type AttendanceRecord struct {
	EmployeeID string
	ShiftID    string
	StoreID    string
	Date       time.Time
	Hours      decimal.Decimal
}

// ShiftRevenue is the cash-register total of one shift, immutable once
// fetched from the ERP.
type ShiftRevenue struct {
	StoreID string
	ShiftID string
	Date    time.Time
	Amount  decimal.Decimal
}

// Basis records the inputs a settlement line was computed from, for audit.
type Basis struct {
	Hours         decimal.Decimal
	Shifts        int
	AttendedDays  int
	ScheduledDays int
	RevenueShare  decimal.Decimal
}

// SettlementLine is one employee's computed gross pay for the period. Rate
// echoes the profile the line was computed with, for audit.
type SettlementLine struct {
	EmployeeID   string
	EmployeeName string
	Scheme       PayScheme
	Rate         decimal.Decimal
	Basis        Basis
	Gross        decimal.Decimal
}

// SettlementResult is the outcome of one settlement computation. Lines are
// sorted by employee ID so repeated runs over identical inputs format
// byte-identically. UnmatchedShifts lists shift IDs referenced by
// revenue-percent attendance that had no matching revenue record;
// MissingProfiles lists employees omitted because no pay profile was found.
// Both are non-fatal warnings.
type SettlementResult struct {
	Period          Period
	Lines           []SettlementLine
	TotalGross      decimal.Decimal
	UnmatchedShifts []string
	MissingProfiles []string
}
