package postgresql

import (
	"context"

	"github.com/pizzayolo/backoffice-go/internal/domain/store"
	"github.com/pizzayolo/backoffice-go/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.Repository {
	return &storeRepositoryImpl{db: db}
}

// List implements store.Repository.
func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, created_at, updated_at
		FROM stores
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// Upsert implements store.Repository.
func (r *storeRepositoryImpl) Upsert(ctx context.Context, s store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			type = EXCLUDED.type,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, s.ID, s.Name, s.Type)
	return err
}
