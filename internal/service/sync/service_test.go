package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/domain/store"
	"github.com/pizzayolo/backoffice-go/internal/pkg/iiko"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMasterData struct {
	employees []iiko.ErpEmployee
	stores    []iiko.ErpStore
	err       error
}

func (f *fakeMasterData) FetchEmployees(ctx context.Context) ([]iiko.ErpEmployee, error) {
	return f.employees, f.err
}

func (f *fakeMasterData) FetchStores(ctx context.Context) ([]iiko.ErpStore, error) {
	return f.stores, f.err
}

type memEmployeeRepo struct {
	upserted map[string]employee.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{upserted: make(map[string]employee.Employee)}
}

func (m *memEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) Upsert(ctx context.Context, emp employee.Employee) error {
	m.upserted[emp.ID] = emp
	return nil
}

func (m *memEmployeeRepo) GetProfiles(ctx context.Context) ([]settlement.PayProfile, error) {
	return nil, nil
}

func (m *memEmployeeRepo) GetProfile(ctx context.Context, employeeID string) (settlement.PayProfile, error) {
	return settlement.PayProfile{}, employee.ErrProfileNotFound
}

func (m *memEmployeeRepo) UpsertProfile(ctx context.Context, p settlement.PayProfile) error {
	return nil
}

type memStoreRepo struct {
	upserted map[string]store.Store
}

func newMemStoreRepo() *memStoreRepo {
	return &memStoreRepo{upserted: make(map[string]store.Store)}
}

func (m *memStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	return nil, nil
}

func (m *memStoreRepo) Upsert(ctx context.Context, s store.Store) error {
	m.upserted[s.ID] = s
	return nil
}

func TestSyncEmployees(t *testing.T) {
	source := &fakeMasterData{employees: []iiko.ErpEmployee{
		{ID: "emp-1", FirstName: "Mario", LastName: "Rossi", Department: "kitchen"},
		{ID: "emp-2", FirstName: "Anna", LastName: "Bianchi", Deleted: true},
	}}
	empRepo := newMemEmployeeRepo()
	svc := NewSyncService(source, empRepo, newMemStoreRepo(), nil)

	count, err := svc.SyncEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Mario Rossi", empRepo.upserted["emp-1"].FullName)
	assert.True(t, empRepo.upserted["emp-1"].Active)
	// Deleted in the ERP means deactivated locally, never removed.
	assert.False(t, empRepo.upserted["emp-2"].Active)
}

func TestSyncStores(t *testing.T) {
	source := &fakeMasterData{stores: []iiko.ErpStore{
		{ID: "store-1", Name: "Pizzeria Centrale", Type: "DEPARTMENT"},
	}}
	storeRepo := newMemStoreRepo()
	svc := NewSyncService(source, newMemEmployeeRepo(), storeRepo, nil)

	count, err := svc.SyncStores(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "Pizzeria Centrale", storeRepo.upserted["store-1"].Name)
}

func TestSyncAllPropagatesFetchError(t *testing.T) {
	wantErr := errors.New("erp down")
	svc := NewSyncService(&fakeMasterData{err: wantErr}, newMemEmployeeRepo(), newMemStoreRepo(), nil)

	err := svc.SyncAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
