package balance

import (
	"context"
	"testing"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

func entry(account, name, incoming, outgoing string) balance.LedgerEntry {
	return balance.LedgerEntry{
		Account:      account,
		Counterparty: name,
		Incoming:     decimal.RequireFromString(incoming),
		Outgoing:     decimal.RequireFromString(outgoing),
	}
}

func TestSignConvention(t *testing.T) {
	// Incoming 1200 against outgoing 1000: we owe the supplier 200.
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Dough Co", "1200", "1000"),
	}, Options{})

	require.Len(t, result.Entries, 1)
	assert.True(t, result.Entries[0].Balance.Equal(decimal.NewFromInt(200)),
		"balance = %s, positive must mean we owe them", result.Entries[0].Balance)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(200)))
}

func TestNetIsIncomingMinusOutgoing(t *testing.T) {
	net := balance.Net(decimal.NewFromInt(1200), decimal.NewFromInt(1000))
	assert.True(t, net.Equal(decimal.NewFromInt(200)))
}

func TestNonPositiveBalancesDropped(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Paid Off", "500", "500"),
		entry(supplierDebtAccount, "Owes Us", "100", "400"),
		entry(supplierDebtAccount, "We Owe", "900", "600"),
	}, Options{})

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "We Owe", result.Entries[0].Counterparty)
}

func TestOtherAccountsIgnored(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry("Касса", "Dough Co", "5000", "0"),
		entry(supplierDebtAccount, "Dough Co", "300", "0"),
	}, Options{})

	require.Len(t, result.Entries, 1)
	assert.True(t, result.Entries[0].Balance.Equal(decimal.NewFromInt(300)))
}

func TestBlacklistMarkers(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Рынок Центральный", "1000", "0"),
		entry(supplierDebtAccount, "Кофейня №3", "1000", "0"),
		entry(supplierDebtAccount, "Dough Co", "1000", "0"),
	}, Options{})

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Dough Co", result.Entries[0].Counterparty)
}

func TestMinAmountFilter(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Small", "99", "0"),
		entry(supplierDebtAccount, "Big", "100", "0"),
	}, Options{MinAmount: decimal.NewFromInt(100)})

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Big", result.Entries[0].Counterparty)
}

func TestEntriesAggregatedAndSorted(t *testing.T) {
	// The same counterparty can appear on several ledger rows; positions sum
	// before the sign check, and the report lists the largest debt first.
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Dough Co", "400", "100"),
		entry(supplierDebtAccount, "Dough Co", "300", "0"),
		entry(supplierDebtAccount, "Cheese Ltd", "900", "0"),
		entry(supplierDebtAccount, "Box & Co", "900", "0"),
	}, Options{})

	require.Len(t, result.Entries, 3)
	assert.Equal(t, "Box & Co", result.Entries[0].Counterparty)
	assert.Equal(t, "Cheese Ltd", result.Entries[1].Counterparty)
	assert.Equal(t, "Dough Co", result.Entries[2].Counterparty)
	assert.True(t, result.Entries[2].Balance.Equal(decimal.NewFromInt(600)))
	assert.True(t, result.Total.Equal(decimal.NewFromInt(2400)))
}

func TestFormatBalance(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "Cheese Ltd", "900", "0"),
		entry(supplierDebtAccount, "Dough Co", "1200", "1000"),
	}, Options{})

	text := Format(result, 0)
	assert.Contains(t, text, "Supplier balance as of 31.03.2025")
	assert.Contains(t, text, "1. Cheese Ltd — 900.00")
	assert.Contains(t, text, "2. Dough Co — 200.00")
	assert.Contains(t, text, "TOTAL: 1100.00")
}

func TestFormatBalanceLimit(t *testing.T) {
	result := ComputeBalance(asOf, []balance.LedgerEntry{
		entry(supplierDebtAccount, "A", "300", "0"),
		entry(supplierDebtAccount, "B", "200", "0"),
		entry(supplierDebtAccount, "C", "100", "0"),
	}, Options{})

	text := Format(result, 2)
	assert.Contains(t, text, "1. A — 300.00")
	assert.Contains(t, text, "2. B — 200.00")
	assert.NotContains(t, text, "C — 100.00")
	assert.Contains(t, text, "… and 1 more")
	assert.Contains(t, text, "TOTAL: 600.00")
}

func TestFormatBalanceEmpty(t *testing.T) {
	text := Format(balance.Result{Date: asOf}, 0)
	assert.Contains(t, text, "No outstanding supplier debt.")
}

type fakeLedgerSource struct {
	entries []balance.LedgerEntry
	err     error
	gotAsOf time.Time
}

func (f *fakeLedgerSource) FetchSupplierLedger(ctx context.Context, asOf time.Time) ([]balance.LedgerEntry, error) {
	f.gotAsOf = asOf
	return f.entries, f.err
}

func TestSupplierBalanceService(t *testing.T) {
	src := &fakeLedgerSource{entries: []balance.LedgerEntry{
		entry(supplierDebtAccount, "Dough Co", "1200", "1000"),
	}}
	svc := NewBalanceService(src, Options{}, nil)

	resp, err := svc.SupplierBalance(context.Background(), balance.BalanceRequest{Date: "31.03.2025"})

	require.NoError(t, err)
	assert.Equal(t, asOf, src.gotAsOf)
	assert.Equal(t, "2025-03-31", resp.Date)
	require.Len(t, resp.Entries, 1)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(200)))
	assert.Contains(t, resp.Text, "TOTAL: 200.00")
}

func TestSupplierBalanceBadDate(t *testing.T) {
	svc := NewBalanceService(&fakeLedgerSource{}, Options{}, nil)
	_, err := svc.SupplierBalance(context.Background(), balance.BalanceRequest{Date: "31/03/2025"})
	require.Error(t, err)
}
