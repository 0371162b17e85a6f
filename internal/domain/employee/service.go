package employee

import (
	"context"
)

type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	UpsertProfile(ctx context.Context, req UpsertProfileRequest) error
}
