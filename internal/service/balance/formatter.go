package balance

import (
	"fmt"
	"strings"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
)

// Format renders a balance snapshot as the chat-facing text report. Pure
// function, same result always yields the same text. A limit above zero
// truncates the list to the top debts; the total still covers everything.
func Format(result balance.Result, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Supplier balance as of %s\n", result.Date.Format(validator.LayoutErpDate))

	if len(result.Entries) == 0 {
		b.WriteString("No outstanding supplier debt.\n")
		return b.String()
	}

	shown := result.Entries
	if limit > 0 && limit < len(shown) {
		shown = shown[:limit]
	}
	for i, entry := range shown {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, entry.Counterparty, entry.Balance.StringFixed(2))
	}
	if hidden := len(result.Entries) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "… and %d more\n", hidden)
	}

	fmt.Fprintf(&b, "\nTOTAL: %s\n", result.Total.StringFixed(2))
	return b.String()
}
