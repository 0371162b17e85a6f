package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/store"
	"github.com/pizzayolo/backoffice-go/internal/pkg/iiko"
)

// MasterDataSource is the slice of the ERP client the sync job needs.
type MasterDataSource interface {
	FetchEmployees(ctx context.Context) ([]iiko.ErpEmployee, error)
	FetchStores(ctx context.Context) ([]iiko.ErpStore, error)
}

type Service interface {
	SyncEmployees(ctx context.Context) (int, error)
	SyncStores(ctx context.Context) (int, error)
	SyncAll(ctx context.Context) error
}

type SyncServiceImpl struct {
	source       MasterDataSource
	employeeRepo employee.Repository
	storeRepo    store.Repository
	logger       *slog.Logger
}

func NewSyncService(source MasterDataSource, employeeRepo employee.Repository, storeRepo store.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncServiceImpl{
		source:       source,
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		logger:       logger,
	}
}

// SyncEmployees refreshes the local roster from the ERP directory. Employees
// the ERP marks deleted are kept but deactivated, so their past settlement
// lines still resolve to a name.
func (s *SyncServiceImpl) SyncEmployees(ctx context.Context) (int, error) {
	erpEmployees, err := s.source.FetchEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch erp employees: %w", err)
	}

	synced := 0
	for _, erpEmp := range erpEmployees {
		emp := employee.Employee{
			ID:         erpEmp.ID,
			FullName:   erpEmp.FullName(),
			Department: erpEmp.Department,
			Active:     !erpEmp.Deleted,
		}
		if err := s.employeeRepo.Upsert(ctx, emp); err != nil {
			return synced, fmt.Errorf("upsert employee %s: %w", erpEmp.ID, err)
		}
		synced++
	}

	s.logger.Info("employee roster synced", "count", synced)
	return synced, nil
}

// SyncStores refreshes the local store directory from the ERP.
func (s *SyncServiceImpl) SyncStores(ctx context.Context) (int, error) {
	erpStores, err := s.source.FetchStores(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch erp stores: %w", err)
	}

	synced := 0
	for _, erpStore := range erpStores {
		st := store.Store{
			ID:   erpStore.ID,
			Name: erpStore.Name,
			Type: erpStore.Type,
		}
		if err := s.storeRepo.Upsert(ctx, st); err != nil {
			return synced, fmt.Errorf("upsert store %s: %w", erpStore.ID, err)
		}
		synced++
	}

	s.logger.Info("store directory synced", "count", synced)
	return synced, nil
}

// SyncAll runs both syncs; stores first since employees reference them.
func (s *SyncServiceImpl) SyncAll(ctx context.Context) error {
	if _, err := s.SyncStores(ctx); err != nil {
		return err
	}
	if _, err := s.SyncEmployees(ctx); err != nil {
		return err
	}
	return nil
}
