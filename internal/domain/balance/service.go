package balance

import (
	"context"
	"time"
)

// LedgerSource fetches the cumulative supplier ledger from the ERP, from
// LedgerEpoch up to and including asOf.
type LedgerSource interface {
	FetchSupplierLedger(ctx context.Context, asOf time.Time) ([]LedgerEntry, error)
}

type Service interface {
	SupplierBalance(ctx context.Context, req BalanceRequest) (BalanceResponse, error)
}
