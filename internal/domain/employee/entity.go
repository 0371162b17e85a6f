package employee

import (
	"time"
)

// Employee mirrors one row of the ERP employee directory, cached locally by
// the sync job. The ID is the ERP's identifier, not a locally generated one,
// so attendance records join to the roster without translation.
type Employee struct {
	ID         string
	FullName   string
	Department string
	StoreID    *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
