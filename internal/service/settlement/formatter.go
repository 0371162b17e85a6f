package settlement

import (
	"fmt"
	"strings"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
)

// Format renders a settlement result as the chat-facing text report. It is a
// pure function: no I/O, and the same result always yields the same text.
// Amounts are rounded to two decimal places here and nowhere earlier.
func Format(result settlement.SettlementResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Settlement report %s – %s\n",
		result.Period.From.Format(validator.LayoutErpDate),
		result.Period.To.Format(validator.LayoutErpDate))

	for _, line := range result.Lines {
		name := line.EmployeeName
		if name == "" {
			name = line.EmployeeID
		}
		fmt.Fprintf(&b, "\n%s — %s\n", name, line.Scheme)
		b.WriteString("  " + describeBasis(line) + "\n")
		fmt.Fprintf(&b, "  gross: %s\n", line.Gross.StringFixed(2))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "TOTAL GROSS: %s\n", result.TotalGross.StringFixed(2))
	fmt.Fprintf(&b, "unmatched shifts: %d\n", len(result.UnmatchedShifts))
	fmt.Fprintf(&b, "employees without profile: %d\n", len(result.MissingProfiles))

	return b.String()
}

// describeBasis spells out the inputs behind a line so the figure can be
// audited without re-running the report.
func describeBasis(line settlement.SettlementLine) string {
	switch line.Scheme {
	case settlement.SchemeMonthly:
		return fmt.Sprintf("%s × %d/%d days",
			line.Rate.StringFixed(2), line.Basis.AttendedDays, line.Basis.ScheduledDays)
	case settlement.SchemeHourly:
		return fmt.Sprintf("%s h × %s",
			line.Basis.Hours.StringFixed(2), line.Rate.StringFixed(2))
	case settlement.SchemePerShift:
		return fmt.Sprintf("%d shifts × %s",
			line.Basis.Shifts, line.Rate.StringFixed(2))
	case settlement.SchemeRevenuePercent:
		return fmt.Sprintf("%s%% of %s",
			line.Rate.String(), line.Basis.RevenueShare.StringFixed(2))
	default:
		return "unknown scheme"
	}
}
