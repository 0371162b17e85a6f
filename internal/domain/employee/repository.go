package employee

import (
	"context"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
)

// Repository is the local roster store. Pay profiles are maintained by the
// back-office operators, the employee rows by the ERP sync job; the
// settlement engine only ever reads.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Upsert(ctx context.Context, emp Employee) error

	GetProfiles(ctx context.Context) ([]settlement.PayProfile, error)
	GetProfile(ctx context.Context, employeeID string) (settlement.PayProfile, error)
	UpsertProfile(ctx context.Context, profile settlement.PayProfile) error
}
