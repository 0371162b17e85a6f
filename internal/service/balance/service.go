package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
)

type BalanceServiceImpl struct {
	ledgerSource balance.LedgerSource
	opts         Options
	logger       *slog.Logger
}

func NewBalanceService(ledgerSource balance.LedgerSource, opts Options, logger *slog.Logger) balance.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &BalanceServiceImpl{
		ledgerSource: ledgerSource,
		opts:         opts,
		logger:       logger,
	}
}

// SupplierBalance computes the cumulative position against every supplier as
// of the requested date. The underlying query always starts at the ledger
// epoch, so re-running with a later date re-reads the whole ledger rather
// than adding a delta.
func (s *BalanceServiceImpl) SupplierBalance(ctx context.Context, req balance.BalanceRequest) (balance.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return balance.BalanceResponse{}, err
	}
	asOf := req.AsOf()

	ledger, err := s.ledgerSource.FetchSupplierLedger(ctx, asOf)
	if err != nil {
		return balance.BalanceResponse{}, fmt.Errorf("fetch supplier ledger: %w", err)
	}

	result := ComputeBalance(asOf, ledger, s.opts)

	s.logger.Info("supplier balance computed",
		"as_of", asOf.Format(validator.LayoutISODate),
		"counterparties", len(result.Entries),
		"total", result.Total.StringFixed(2))

	return mapToBalanceResponse(result), nil
}

func mapToBalanceResponse(result balance.Result) balance.BalanceResponse {
	entries := make([]balance.EntryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, balance.EntryResponse{
			Counterparty: e.Counterparty,
			Incoming:     e.Incoming,
			Outgoing:     e.Outgoing,
			Balance:      e.Balance,
		})
	}

	return balance.BalanceResponse{
		Date:          result.Date.Format(validator.LayoutISODate),
		Entries:       entries,
		TotalIncoming: result.TotalIncoming,
		TotalOutgoing: result.TotalOutgoing,
		Total:         result.Total,
		Text:          Format(result, 0),
	}
}
