package settlement

import (
	"log/slog"
	"sort"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Options tunes the engine without threading ambient state through it.
type Options struct {
	// EmployeeNames maps employee IDs to display names for the report.
	EmployeeNames map[string]string

	// ScheduledDays overrides the monthly-proration denominator per
	// employee. When an employee has no entry the full period length in
	// calendar days is used.
	ScheduledDays map[string]int

	// Logger receives data-quality warnings (duplicate attendance rows).
	// Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// revenueKey joins attendance to revenue. Both sources date a
// midnight-spanning shift by its opening day, so the date leg is exact.
type revenueKey struct {
	storeID string
	shiftID string
	date    string
}

func keyOf(storeID, shiftID string, date string) revenueKey {
	return revenueKey{storeID: storeID, shiftID: shiftID, date: date}
}

// ComputeSettlement reconciles attendance, revenue, and pay profiles into one
// settlement result. It is a pure function of its inputs: sources are never
// mutated, line order is sorted by employee ID, and identical snapshots
// produce identical results. Per-employee problems (missing profile,
// unmatched revenue) are accumulated, never fatal.
func ComputeSettlement(
	period settlement.Period,
	attendance []settlement.AttendanceRecord,
	revenue []settlement.ShiftRevenue,
	profiles []settlement.PayProfile,
	opts Options,
) settlement.SettlementResult {
	log := opts.logger()

	profileByEmployee := make(map[string]settlement.PayProfile, len(profiles))
	for _, p := range profiles {
		profileByEmployee[p.EmployeeID] = p
	}

	// A revenue-percent shift must resolve to exactly one revenue record;
	// zero or several matches make it unmatched.
	revenueByKey := make(map[revenueKey][]settlement.ShiftRevenue, len(revenue))
	for _, rev := range revenue {
		k := keyOf(rev.StoreID, rev.ShiftID, rev.Date.Format(validator.LayoutISODate))
		revenueByKey[k] = append(revenueByKey[k], rev)
	}

	byEmployee := groupAttendance(attendance, log)

	employeeIDs := make([]string, 0, len(byEmployee))
	for id := range byEmployee {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	result := settlement.SettlementResult{
		Period:     period,
		TotalGross: decimal.Zero,
	}
	unmatchedSet := make(map[string]struct{})

	for _, employeeID := range employeeIDs {
		records := byEmployee[employeeID]

		profile, ok := profileByEmployee[employeeID]
		if !ok {
			result.MissingProfiles = append(result.MissingProfiles, employeeID)
			continue
		}

		var (
			basis     settlement.Basis
			gross     decimal.Decimal
			unmatched []string
		)

		switch profile.Scheme {
		case settlement.SchemeMonthly:
			basis, gross = computeMonthly(period, profile, records, opts.ScheduledDays[employeeID])
		case settlement.SchemeHourly:
			basis, gross = computeHourly(profile, records)
		case settlement.SchemePerShift:
			basis, gross = computePerShift(profile, records)
		case settlement.SchemeRevenuePercent:
			basis, gross, unmatched = computeRevenuePercent(profile, records, revenueByKey)
		default:
			log.Warn("skipping employee with unknown pay scheme",
				"employee_id", employeeID, "scheme", profile.Scheme)
			result.MissingProfiles = append(result.MissingProfiles, employeeID)
			continue
		}

		for _, shiftID := range unmatched {
			unmatchedSet[shiftID] = struct{}{}
		}

		result.Lines = append(result.Lines, settlement.SettlementLine{
			EmployeeID:   employeeID,
			EmployeeName: opts.EmployeeNames[employeeID],
			Scheme:       profile.Scheme,
			Rate:         profile.Rate,
			Basis:        basis,
			Gross:        gross,
		})
		result.TotalGross = result.TotalGross.Add(gross)
	}

	result.UnmatchedShifts = make([]string, 0, len(unmatchedSet))
	for shiftID := range unmatchedSet {
		result.UnmatchedShifts = append(result.UnmatchedShifts, shiftID)
	}
	sort.Strings(result.UnmatchedShifts)
	if len(result.UnmatchedShifts) == 0 {
		result.UnmatchedShifts = nil
	}

	return result
}

// groupAttendance indexes records per employee, collapsing duplicate
// (employee, shift) pairs. Duplicates are a data-quality anomaly: the later
// record wins and the collision is logged. Summing would double-count hours.
func groupAttendance(attendance []settlement.AttendanceRecord, log *slog.Logger) map[string][]settlement.AttendanceRecord {
	type shiftKey struct {
		employeeID string
		shiftID    string
	}

	seen := make(map[shiftKey]int)
	byEmployee := make(map[string][]settlement.AttendanceRecord)

	for _, rec := range attendance {
		k := shiftKey{employeeID: rec.EmployeeID, shiftID: rec.ShiftID}
		if idx, dup := seen[k]; dup {
			log.Warn("duplicate attendance record, keeping the later one",
				"employee_id", rec.EmployeeID, "shift_id", rec.ShiftID)
			byEmployee[rec.EmployeeID][idx] = rec
			continue
		}
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
		seen[k] = len(byEmployee[rec.EmployeeID]) - 1
	}

	return byEmployee
}

// computeMonthly prorates the fixed rate by attended days over scheduled
// days. Any attendance record marks its day attended, including
// scheduled-but-unworked ones; a zero scheduledDays falls back to the
// period's calendar length.
func computeMonthly(period settlement.Period, profile settlement.PayProfile, records []settlement.AttendanceRecord, scheduledDays int) (settlement.Basis, decimal.Decimal) {
	days := make(map[string]struct{})
	for _, rec := range records {
		days[rec.Date.Format(validator.LayoutISODate)] = struct{}{}
	}

	if scheduledDays <= 0 {
		scheduledDays = period.Days()
	}

	basis := settlement.Basis{
		AttendedDays:  len(days),
		ScheduledDays: scheduledDays,
	}

	gross := profile.Rate.
		Mul(decimal.NewFromInt(int64(basis.AttendedDays))).
		Div(decimal.NewFromInt(int64(scheduledDays)))

	return basis, gross
}

func computeHourly(profile settlement.PayProfile, records []settlement.AttendanceRecord) (settlement.Basis, decimal.Decimal) {
	hours := decimal.Zero
	for _, rec := range records {
		hours = hours.Add(rec.Hours)
	}

	basis := settlement.Basis{Hours: hours}
	return basis, profile.Rate.Mul(hours)
}

// computePerShift pays per distinct worked shift; scheduled-but-unworked
// records (zero hours) do not count.
func computePerShift(profile settlement.PayProfile, records []settlement.AttendanceRecord) (settlement.Basis, decimal.Decimal) {
	worked := make(map[string]struct{})
	for _, rec := range records {
		if rec.Hours.IsPositive() {
			worked[rec.ShiftID] = struct{}{}
		}
	}

	basis := settlement.Basis{Shifts: len(worked)}
	return basis, profile.Rate.Mul(decimal.NewFromInt(int64(len(worked))))
}

// computeRevenuePercent sums the revenue of every worked shift that resolves
// to exactly one revenue record and applies the percentage. Shifts with zero
// or several matches contribute nothing and are reported for manual review.
func computeRevenuePercent(profile settlement.PayProfile, records []settlement.AttendanceRecord, revenueByKey map[revenueKey][]settlement.ShiftRevenue) (settlement.Basis, decimal.Decimal, []string) {
	matchedRevenue := decimal.Zero
	var unmatched []string

	for _, rec := range records {
		if !rec.Hours.IsPositive() {
			continue
		}
		k := keyOf(rec.StoreID, rec.ShiftID, rec.Date.Format(validator.LayoutISODate))
		matches := revenueByKey[k]
		if len(matches) != 1 {
			unmatched = append(unmatched, rec.ShiftID)
			continue
		}
		matchedRevenue = matchedRevenue.Add(matches[0].Amount)
	}

	basis := settlement.Basis{RevenueShare: matchedRevenue}
	gross := matchedRevenue.Mul(profile.Rate).Div(decimal.NewFromInt(100))
	return basis, gross, unmatched
}
