package settlement

import (
	"testing"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func period(from, to int) settlement.Period {
	return settlement.Period{From: day(from), To: day(to)}
}

func att(emp, shift, store string, d int, hours string) settlement.AttendanceRecord {
	return settlement.AttendanceRecord{
		EmployeeID: emp,
		ShiftID:    shift,
		StoreID:    store,
		Date:       day(d),
		Hours:      decimal.RequireFromString(hours),
	}
}

func rev(store, shift string, d int, amount string) settlement.ShiftRevenue {
	return settlement.ShiftRevenue{
		StoreID: store,
		ShiftID: shift,
		Date:    day(d),
		Amount:  decimal.RequireFromString(amount),
	}
}

func profile(emp string, scheme settlement.PayScheme, rate string) settlement.PayProfile {
	return settlement.PayProfile{
		EmployeeID: emp,
		Scheme:     scheme,
		Rate:       decimal.RequireFromString(rate),
	}
}

func TestHourlyScheme(t *testing.T) {
	// Rate 200/h, two records of 4h and 6h.
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "shift-1", "store-1", 1, "4"),
			att("emp-1", "shift-2", "store-1", 2, "6"),
		},
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeHourly, "200")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.True(t, line.Gross.Equal(decimal.NewFromInt(2000)), "gross = %s", line.Gross)
	assert.True(t, line.Basis.Hours.Equal(decimal.NewFromInt(10)))
	assert.True(t, result.TotalGross.Equal(decimal.NewFromInt(2000)))
	assert.Empty(t, result.UnmatchedShifts)
	assert.Empty(t, result.MissingProfiles)
}

func TestRevenuePercentScheme(t *testing.T) {
	// 5% of one matched shift with revenue 10,000; a second attended shift
	// has no revenue record and must surface as unmatched.
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "shift-1", "store-1", 1, "8"),
			att("emp-1", "shift-2", "store-1", 2, "8"),
		},
		[]settlement.ShiftRevenue{rev("store-1", "shift-1", 1, "10000")},
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeRevenuePercent, "5")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.True(t, line.Gross.Equal(decimal.NewFromInt(500)), "gross = %s", line.Gross)
	assert.True(t, line.Basis.RevenueShare.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, []string{"shift-2"}, result.UnmatchedShifts)
}

func TestRevenuePercentAmbiguousMatchIsUnmatched(t *testing.T) {
	// Two revenue records under the same key cannot be resolved; the shift
	// contributes nothing rather than silently picking one.
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{att("emp-1", "shift-1", "store-1", 1, "8")},
		[]settlement.ShiftRevenue{
			rev("store-1", "shift-1", 1, "10000"),
			rev("store-1", "shift-1", 1, "9000"),
		},
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeRevenuePercent, "5")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	assert.True(t, result.Lines[0].Gross.IsZero())
	assert.Equal(t, []string{"shift-1"}, result.UnmatchedShifts)
}

func TestRevenuePercentIgnoresOtherStoreAndDate(t *testing.T) {
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{att("emp-1", "shift-1", "store-1", 1, "8")},
		[]settlement.ShiftRevenue{
			rev("store-2", "shift-1", 1, "10000"), // wrong store
			rev("store-1", "shift-1", 2, "10000"), // wrong date
		},
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeRevenuePercent, "5")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	assert.True(t, result.Lines[0].Gross.IsZero())
	assert.Equal(t, []string{"shift-1"}, result.UnmatchedShifts)
}

func TestPerShiftScheme(t *testing.T) {
	// Rate 500, three worked shifts and one scheduled-but-unworked shift.
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "shift-1", "store-1", 1, "8"),
			att("emp-1", "shift-2", "store-1", 2, "8"),
			att("emp-1", "shift-3", "store-1", 3, "8"),
			att("emp-1", "shift-4", "store-1", 4, "0"),
		},
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemePerShift, "500")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.True(t, line.Gross.Equal(decimal.NewFromInt(1500)), "gross = %s", line.Gross)
	assert.Equal(t, 3, line.Basis.Shifts)
}

func TestMonthlyProration(t *testing.T) {
	// 31000 over a 31-day period with 10 attended days.
	result := ComputeSettlement(
		period(1, 31),
		attendanceForDays("emp-1", 1, 10),
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeMonthly, "31000")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.True(t, line.Gross.Equal(decimal.NewFromInt(10000)), "gross = %s", line.Gross)
	assert.Equal(t, 10, line.Basis.AttendedDays)
	assert.Equal(t, 31, line.Basis.ScheduledDays)
}

func TestMonthlyProrationScheduledDaysOverride(t *testing.T) {
	result := ComputeSettlement(
		period(1, 31),
		attendanceForDays("emp-1", 1, 10),
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeMonthly, "20000")},
		Options{ScheduledDays: map[string]int{"emp-1": 20}},
	)

	require.Len(t, result.Lines, 1)
	assert.True(t, result.Lines[0].Gross.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 20, result.Lines[0].Basis.ScheduledDays)
}

func TestMissingProfileIsNonFatal(t *testing.T) {
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "shift-1", "store-1", 1, "4"),
			att("emp-2", "shift-2", "store-1", 1, "4"),
		},
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeHourly, "100")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	assert.Equal(t, "emp-1", result.Lines[0].EmployeeID)
	assert.Equal(t, []string{"emp-2"}, result.MissingProfiles)
	assert.True(t, result.TotalGross.Equal(decimal.NewFromInt(400)))
}

func TestDuplicateAttendanceLastWins(t *testing.T) {
	// Two records for the same (employee, shift): the later one wins, the
	// hours are never summed.
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "shift-1", "store-1", 1, "4"),
			att("emp-1", "shift-1", "store-1", 1, "6"),
		},
		nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeHourly, "100")},
		Options{},
	)

	require.Len(t, result.Lines, 1)
	assert.True(t, result.Lines[0].Basis.Hours.Equal(decimal.NewFromInt(6)),
		"hours = %s, duplicates must not be summed", result.Lines[0].Basis.Hours)
	assert.True(t, result.Lines[0].Gross.Equal(decimal.NewFromInt(600)))
}

func TestLinesSortedByEmployeeID(t *testing.T) {
	attendance := []settlement.AttendanceRecord{
		att("emp-3", "s3", "store-1", 1, "1"),
		att("emp-1", "s1", "store-1", 1, "1"),
		att("emp-2", "s2", "store-1", 1, "1"),
	}
	profiles := []settlement.PayProfile{
		profile("emp-1", settlement.SchemeHourly, "100"),
		profile("emp-2", settlement.SchemeHourly, "100"),
		profile("emp-3", settlement.SchemeHourly, "100"),
	}

	result := ComputeSettlement(period(1, 31), attendance, nil, profiles, Options{})

	require.Len(t, result.Lines, 3)
	assert.Equal(t, "emp-1", result.Lines[0].EmployeeID)
	assert.Equal(t, "emp-2", result.Lines[1].EmployeeID)
	assert.Equal(t, "emp-3", result.Lines[2].EmployeeID)
}

func TestIdempotence(t *testing.T) {
	attendance := []settlement.AttendanceRecord{
		att("emp-2", "shift-2", "store-1", 2, "6"),
		att("emp-1", "shift-1", "store-1", 1, "8"),
		att("emp-3", "shift-3", "store-1", 3, "8"),
	}
	revenue := []settlement.ShiftRevenue{rev("store-1", "shift-1", 1, "12345.67")}
	profiles := []settlement.PayProfile{
		profile("emp-1", settlement.SchemeRevenuePercent, "7.5"),
		profile("emp-2", settlement.SchemeHourly, "250"),
	}

	first := ComputeSettlement(period(1, 31), attendance, revenue, profiles, Options{})
	second := ComputeSettlement(period(1, 31), attendance, revenue, profiles, Options{})

	assert.Equal(t, Format(first), Format(second), "identical snapshots must format byte-identically")
}

func TestEngineDoesNotMutateInputs(t *testing.T) {
	attendance := []settlement.AttendanceRecord{
		att("emp-1", "shift-1", "store-1", 1, "4"),
		att("emp-1", "shift-1", "store-1", 1, "6"),
	}
	original := make([]settlement.AttendanceRecord, len(attendance))
	copy(original, attendance)

	ComputeSettlement(period(1, 31), attendance, nil,
		[]settlement.PayProfile{profile("emp-1", settlement.SchemeHourly, "100")}, Options{})

	assert.Equal(t, original, attendance)
}

func TestAdditivityForHourlyAndPerShift(t *testing.T) {
	// Non-overlapping halves of March must sum to the full month for HOURLY
	// and PER_SHIFT schemes.
	profiles := []settlement.PayProfile{
		profile("emp-1", settlement.SchemeHourly, "200"),
		profile("emp-2", settlement.SchemePerShift, "500"),
	}
	firstHalf := []settlement.AttendanceRecord{
		att("emp-1", "s1", "store-1", 2, "5"),
		att("emp-2", "s2", "store-1", 3, "8"),
	}
	secondHalf := []settlement.AttendanceRecord{
		att("emp-1", "s3", "store-1", 20, "7"),
		att("emp-2", "s4", "store-1", 21, "8"),
		att("emp-2", "s5", "store-1", 22, "8"),
	}

	combined := ComputeSettlement(period(1, 31), append(append([]settlement.AttendanceRecord{}, firstHalf...), secondHalf...), nil, profiles, Options{})
	a := ComputeSettlement(period(1, 15), firstHalf, nil, profiles, Options{})
	b := ComputeSettlement(period(16, 31), secondHalf, nil, profiles, Options{})

	assert.True(t, combined.TotalGross.Equal(a.TotalGross.Add(b.TotalGross)),
		"combined %s != %s + %s", combined.TotalGross, a.TotalGross, b.TotalGross)
}

func TestTotalGrossIsExactSumOfLines(t *testing.T) {
	result := ComputeSettlement(
		period(1, 31),
		[]settlement.AttendanceRecord{
			att("emp-1", "s1", "store-1", 1, "3.5"),
			att("emp-2", "s2", "store-1", 1, "7.25"),
		},
		nil,
		[]settlement.PayProfile{
			profile("emp-1", settlement.SchemeHourly, "123.45"),
			profile("emp-2", settlement.SchemeHourly, "67.89"),
		},
		Options{},
	)

	sum := decimal.Zero
	for _, line := range result.Lines {
		sum = sum.Add(line.Gross)
	}
	assert.True(t, result.TotalGross.Equal(sum))
}

func TestEmptyInputs(t *testing.T) {
	result := ComputeSettlement(period(1, 31), nil, nil, nil, Options{})

	assert.Empty(t, result.Lines)
	assert.True(t, result.TotalGross.IsZero())
	assert.Empty(t, result.UnmatchedShifts)
	assert.Empty(t, result.MissingProfiles)
}

// attendanceForDays builds one worked shift per day for n consecutive days.
func attendanceForDays(emp string, startDay, n int) []settlement.AttendanceRecord {
	records := make([]settlement.AttendanceRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, settlement.AttendanceRecord{
			EmployeeID: emp,
			ShiftID:    time.Date(2025, 3, startDay+i, 0, 0, 0, 0, time.UTC).Format("shift-2006-01-02"),
			StoreID:    "store-1",
			Date:       day(startDay + i),
			Hours:      decimal.NewFromInt(8),
		})
	}
	return records
}
