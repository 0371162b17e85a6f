package balance

import (
	"sort"
	"strings"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
	"github.com/shopspring/decimal"
)

// supplierDebtAccount is the ERP liability account the supplier balance is
// read from. The name is the ERP's own, verbatim.
const supplierDebtAccount = "Задолженность перед поставщиками"

// defaultBlacklist drops internal counterparties that book through the
// supplier account but are not real suppliers.
var defaultBlacklist = []string{"Рынок", "Кофейня"}

// Options tune which ledger rows make it into the report. Zero values mean
// the defaults above with no minimum amount.
type Options struct {
	Account          string
	BlacklistMarkers []string
	MinAmount        decimal.Decimal
}

// ComputeBalance aggregates a ledger snapshot into per-counterparty
// balances. Pure function: same entries in, same result out. Only positive
// balances survive — the report answers "whom do we owe", so counterparties
// we are owed by (or square with) are dropped.
func ComputeBalance(asOf time.Time, ledger []balance.LedgerEntry, opts Options) balance.Result {
	account := opts.Account
	if account == "" {
		account = supplierDebtAccount
	}
	markers := opts.BlacklistMarkers
	if markers == nil {
		markers = defaultBlacklist
	}

	type position struct {
		incoming decimal.Decimal
		outgoing decimal.Decimal
	}
	positions := make(map[string]position)

	for _, row := range ledger {
		if row.Account != account {
			continue
		}
		name := row.Counterparty
		if name == "" {
			name = "N/A"
		}
		if blacklisted(name, markers) {
			continue
		}
		p := positions[name]
		p.incoming = p.incoming.Add(row.Incoming)
		p.outgoing = p.outgoing.Add(row.Outgoing)
		positions[name] = p
	}

	entries := make([]balance.Entry, 0, len(positions))
	for name, p := range positions {
		net := balance.Net(p.incoming, p.outgoing)
		if !net.IsPositive() || net.LessThan(opts.MinAmount) {
			continue
		}
		entries = append(entries, balance.Entry{
			Counterparty: name,
			Incoming:     p.incoming,
			Outgoing:     p.outgoing,
			Balance:      net,
		})
	}

	// Largest debt first; name breaks ties so the order is stable.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Balance.Equal(entries[j].Balance) {
			return entries[i].Balance.GreaterThan(entries[j].Balance)
		}
		return entries[i].Counterparty < entries[j].Counterparty
	})

	result := balance.Result{Date: asOf, Entries: entries}
	for _, e := range entries {
		result.TotalIncoming = result.TotalIncoming.Add(e.Incoming)
		result.TotalOutgoing = result.TotalOutgoing.Add(e.Outgoing)
		result.Total = result.Total.Add(e.Balance)
	}
	return result
}

func blacklisted(name string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
