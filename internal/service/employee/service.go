package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	logger       *slog.Logger
}

func NewEmployeeService(employeeRepo employee.Repository, logger *slog.Logger) employee.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// List implements employee.Service. Returns the roster joined with pay
// profiles; employees without a profile come back with nil scheme fields so
// the operator can see who still needs one.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	profiles, err := s.employeeRepo.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pay profiles: %w", err)
	}
	byEmployee := make(map[string]settlement.PayProfile, len(profiles))
	for _, p := range profiles {
		byEmployee[p.EmployeeID] = p
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp := employee.EmployeeResponse{
			ID:         emp.ID,
			FullName:   emp.FullName,
			Department: emp.Department,
			StoreID:    emp.StoreID,
			Active:     emp.Active,
		}
		if p, ok := byEmployee[emp.ID]; ok {
			scheme := string(p.Scheme)
			rate := p.Rate
			resp.Scheme = &scheme
			resp.Rate = &rate
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpsertProfile implements employee.Service.
func (s *EmployeeServiceImpl) UpsertProfile(ctx context.Context, req employee.UpsertProfileRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	profile := settlement.PayProfile{
		EmployeeID: req.EmployeeID,
		Scheme:     settlement.PayScheme(req.Scheme),
		Rate:       req.Rate,
	}
	if err := s.employeeRepo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert pay profile: %w", err)
	}

	s.logger.Info("pay profile updated",
		"employee_id", req.EmployeeID, "scheme", req.Scheme)
	return nil
}
