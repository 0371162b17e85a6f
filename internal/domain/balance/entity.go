package balance

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEpoch is the fixed lower bound of every ledger query. Counterparty
// balances are cumulative: the books open at this date, so a balance as of
// any later date must cover everything since, not a period delta.
var LedgerEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// LedgerEntry is one normalized row of the ERP transactions report:
// money moved on an account between us and a counterparty.
type LedgerEntry struct {
	Account      string
	Counterparty string
	Incoming     decimal.Decimal
	Outgoing     decimal.Decimal
}

// Entry is the aggregated position against one counterparty.
type Entry struct {
	Counterparty string
	Incoming     decimal.Decimal
	Outgoing     decimal.Decimal
	Balance      decimal.Decimal
}

// Result is a point-in-time balance snapshot across all counterparties.
type Result struct {
	Date          time.Time
	Entries       []Entry
	TotalIncoming decimal.Decimal
	TotalOutgoing decimal.Decimal
	Total         decimal.Decimal
}

// Net applies the ledger sign convention: incoming minus outgoing, so a
// positive balance means we owe the counterparty. Every balance in this
// package goes through Net; never compute the difference inline.
func Net(incoming, outgoing decimal.Decimal) decimal.Decimal {
	return incoming.Sub(outgoing)
}
