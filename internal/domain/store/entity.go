package store

import "time"

// Store is one ERP sales point, cached locally by the sync job. The ID is
// the ERP's identifier so cash shifts join without translation.
type Store struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
