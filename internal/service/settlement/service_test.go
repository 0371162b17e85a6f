package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevenueSource struct {
	revenue []settlement.ShiftRevenue
	err     error
	calls   int
}

func (f *fakeRevenueSource) FetchRevenue(ctx context.Context, storeID string, p settlement.Period) ([]settlement.ShiftRevenue, error) {
	f.calls++
	return f.revenue, f.err
}

type fakeAttendanceSource struct {
	attendance []settlement.AttendanceRecord
	err        error
	calls      int
}

func (f *fakeAttendanceSource) FetchAttendance(ctx context.Context, p settlement.Period) ([]settlement.AttendanceRecord, error) {
	f.calls++
	return f.attendance, f.err
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	profiles  []settlement.PayProfile
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) GetProfiles(ctx context.Context) ([]settlement.PayProfile, error) {
	return f.profiles, nil
}

func (f *fakeEmployeeRepo) GetProfile(ctx context.Context, employeeID string) (settlement.PayProfile, error) {
	return settlement.PayProfile{}, employee.ErrProfileNotFound
}

func (f *fakeEmployeeRepo) UpsertProfile(ctx context.Context, p settlement.PayProfile) error {
	return nil
}

func TestSettlementReport(t *testing.T) {
	revSrc := &fakeRevenueSource{revenue: []settlement.ShiftRevenue{
		rev("store-1", "shift-1", 1, "10000"),
	}}
	attSrc := &fakeAttendanceSource{attendance: []settlement.AttendanceRecord{
		att("emp-1", "shift-1", "store-1", 1, "8"),
	}}
	repo := &fakeEmployeeRepo{
		employees: []employee.Employee{{ID: "emp-1", FullName: "Mario Rossi"}},
		profiles:  []settlement.PayProfile{profile("emp-1", settlement.SchemeRevenuePercent, "5")},
	}

	svc := NewSettlementService(revSrc, attSrc, repo, nil)
	resp, err := svc.SettlementReport(context.Background(), settlement.ReportRequest{
		From: "2025-03-01", To: "2025-03-31", StoreID: "store-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.PeriodFrom)
	assert.Equal(t, "2025-03-31", resp.PeriodTo)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Mario Rossi", resp.Lines[0].EmployeeName)
	assert.True(t, resp.TotalGross.Equal(decimal.NewFromInt(500)))
	assert.Contains(t, resp.Text, "TOTAL GROSS: 500.00")
}

func TestSettlementReportInvalidRangeSkipsFetch(t *testing.T) {
	// from after to must fail validation before either source is contacted.
	revSrc := &fakeRevenueSource{}
	attSrc := &fakeAttendanceSource{}
	svc := NewSettlementService(revSrc, attSrc, &fakeEmployeeRepo{}, nil)

	_, err := svc.SettlementReport(context.Background(), settlement.ReportRequest{
		From: "2025-03-31", To: "2025-03-01",
	})

	require.ErrorIs(t, err, settlement.ErrInvalidRange)
	assert.Zero(t, revSrc.calls)
	assert.Zero(t, attSrc.calls)
}

func TestSettlementReportDayFirstDates(t *testing.T) {
	svc := NewSettlementService(&fakeRevenueSource{}, &fakeAttendanceSource{}, &fakeEmployeeRepo{}, nil)

	resp, err := svc.SettlementReport(context.Background(), settlement.ReportRequest{
		From: "01.03.2025", To: "31.03.2025",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.PeriodFrom)
	assert.Equal(t, "2025-03-31", resp.PeriodTo)
}

func TestSettlementReportFetchFailureIsFatal(t *testing.T) {
	// No partial reports: a failing source aborts the run entirely.
	upstreamErr := settlement.ErrUpstreamUnavailable
	svc := NewSettlementService(
		&fakeRevenueSource{err: upstreamErr},
		&fakeAttendanceSource{},
		&fakeEmployeeRepo{},
		nil,
	)

	_, err := svc.SettlementReport(context.Background(), settlement.ReportRequest{
		From: "2025-03-01", To: "2025-03-31",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, settlement.ErrUpstreamUnavailable))
}

func TestSettlementReportZeroEmployees(t *testing.T) {
	svc := NewSettlementService(&fakeRevenueSource{}, &fakeAttendanceSource{}, &fakeEmployeeRepo{}, nil)

	resp, err := svc.SettlementReport(context.Background(), settlement.ReportRequest{
		From: "2025-03-01", To: "2025-03-31",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.True(t, resp.TotalGross.IsZero())
	assert.Contains(t, resp.Text, "TOTAL GROSS: 0.00")
}
