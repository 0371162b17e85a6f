package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pizzayolo/backoffice-go/internal/domain/employee"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, store_id, active, created_at, updated_at
		FROM employees
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.FullName,
			&emp.Department,
			&emp.StoreID,
			&emp.Active,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, department, store_id, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FullName,
		&emp.Department,
		&emp.StoreID,
		&emp.Active,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// Upsert implements employee.Repository. The roster is ERP-owned, so an
// existing row is overwritten wholesale; local data lives in pay_profiles.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, full_name, department, store_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			department = EXCLUDED.department,
			store_id = EXCLUDED.store_id,
			active = EXCLUDED.active,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, emp.ID, emp.FullName, emp.Department, emp.StoreID, emp.Active)
	return err
}

// GetProfiles implements employee.Repository.
func (r *employeeRepositoryImpl) GetProfiles(ctx context.Context) ([]settlement.PayProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, scheme, rate
		FROM pay_profiles
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []settlement.PayProfile
	for rows.Next() {
		var p settlement.PayProfile
		if err := rows.Scan(&p.EmployeeID, &p.Scheme, &p.Rate); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfile implements employee.Repository.
func (r *employeeRepositoryImpl) GetProfile(ctx context.Context, employeeID string) (settlement.PayProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, scheme, rate
		FROM pay_profiles
		WHERE employee_id = $1
	`

	var p settlement.PayProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(&p.EmployeeID, &p.Scheme, &p.Rate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.PayProfile{}, employee.ErrProfileNotFound
		}
		return settlement.PayProfile{}, err
	}

	return p, nil
}

// UpsertProfile implements employee.Repository.
func (r *employeeRepositoryImpl) UpsertProfile(ctx context.Context, profile settlement.PayProfile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_profiles (employee_id, scheme, rate, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (employee_id) DO UPDATE
		SET scheme = EXCLUDED.scheme,
			rate = EXCLUDED.rate,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, profile.EmployeeID, profile.Scheme, profile.Rate)
	return err
}
