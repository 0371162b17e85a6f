package iiko

import (
	"context"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
)

const (
	olapReportTransactions = "TRANSACTIONS"

	colAccountName  = "Account.Name"
	colCounterparty = "Counteragent.Name"
	colIncoming     = "Sum.Incoming"
	colOutgoing     = "Sum.Outgoing"
)

// FetchSupplierLedger pulls the cumulative supplier ledger as an OLAP
// transactions report, from the ledger epoch through asOf. Rows come back
// grouped by account and counterparty with incoming/outgoing money sums;
// filtering and aggregation happen in the balance engine, not here.
func (c *Client) FetchSupplierLedger(ctx context.Context, asOf time.Time) ([]balance.LedgerEntry, error) {
	rows, err := c.OLAPTransactions(ctx, OLAPParams{
		Report:     olapReportTransactions,
		From:       balance.LedgerEpoch,
		To:         asOf,
		GroupRows:  []string{colAccountName, colCounterparty},
		Aggregates: []string{colIncoming, colOutgoing},
		Filters: [][2]string{
			{"Account.CounteragentType", "SUPPLIER"},
			{"Counteragent", "SUPPLIER"},
			{"Account.Group", "LIABILITIES"},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]balance.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, balance.LedgerEntry{
			Account:      row.String(colAccountName),
			Counterparty: row.String(colCounterparty),
			Incoming:     row.Decimal(colIncoming),
			Outgoing:     row.Decimal(colOutgoing),
		})
	}
	return entries, nil
}
