package store

import "context"

type Repository interface {
	List(ctx context.Context) ([]Store, error)
	Upsert(ctx context.Context, s Store) error
}
