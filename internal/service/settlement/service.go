package settlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type SettlementServiceImpl struct {
	revenueSource    settlement.RevenueSource
	attendanceSource settlement.AttendanceSource
	employeeRepo     employee.Repository
	logger           *slog.Logger
}

func NewSettlementService(
	revenueSource settlement.RevenueSource,
	attendanceSource settlement.AttendanceSource,
	employeeRepo employee.Repository,
	logger *slog.Logger,
) settlement.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementServiceImpl{
		revenueSource:    revenueSource,
		attendanceSource: attendanceSource,
		employeeRepo:     employeeRepo,
		logger:           logger,
	}
}

// SettlementReport runs one settlement computation over a fresh snapshot.
// The two source fetches are independent and run concurrently; the engine
// waits for both. Either fetch failing, or the context being cancelled,
// aborts the whole run rather than computing on partial data.
func (s *SettlementServiceImpl) SettlementReport(ctx context.Context, req settlement.ReportRequest) (settlement.ReportResponse, error) {
	period, err := req.Period()
	if err != nil {
		return settlement.ReportResponse{}, err
	}

	var (
		revenue    []settlement.ShiftRevenue
		attendance []settlement.AttendanceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenue, err = s.revenueSource.FetchRevenue(gctx, req.StoreID, period)
		if err != nil {
			return fmt.Errorf("fetch revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		attendance, err = s.attendanceSource.FetchAttendance(gctx, period)
		if err != nil {
			return fmt.Errorf("fetch attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return settlement.ReportResponse{}, err
	}

	profiles, err := s.employeeRepo.GetProfiles(ctx)
	if err != nil {
		return settlement.ReportResponse{}, fmt.Errorf("load pay profiles: %w", err)
	}

	roster, err := s.employeeRepo.List(ctx)
	if err != nil {
		return settlement.ReportResponse{}, fmt.Errorf("load roster: %w", err)
	}
	names := make(map[string]string, len(roster))
	for _, emp := range roster {
		names[emp.ID] = emp.FullName
	}

	result := ComputeSettlement(period, attendance, revenue, profiles, Options{
		EmployeeNames: names,
		Logger:        s.logger,
	})

	s.logger.Info("settlement computed",
		"from", req.From, "to", req.To,
		"lines", len(result.Lines),
		"unmatched_shifts", len(result.UnmatchedShifts),
		"missing_profiles", len(result.MissingProfiles))

	return mapToReportResponse(result), nil
}

func mapToReportResponse(result settlement.SettlementResult) settlement.ReportResponse {
	lines := make([]settlement.LineResponse, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, settlement.LineResponse{
			EmployeeID:   line.EmployeeID,
			EmployeeName: line.EmployeeName,
			Scheme:       string(line.Scheme),
			Basis: settlement.BasisResponse{
				Hours:         line.Basis.Hours,
				Shifts:        line.Basis.Shifts,
				AttendedDays:  line.Basis.AttendedDays,
				ScheduledDays: line.Basis.ScheduledDays,
				RevenueShare:  line.Basis.RevenueShare,
			},
			Gross: line.Gross,
		})
	}

	return settlement.ReportResponse{
		PeriodFrom:      result.Period.From.Format(validator.LayoutISODate),
		PeriodTo:        result.Period.To.Format(validator.LayoutISODate),
		Lines:           lines,
		TotalGross:      result.TotalGross,
		UnmatchedShifts: result.UnmatchedShifts,
		MissingProfiles: result.MissingProfiles,
		Text:            Format(result),
	}
}
