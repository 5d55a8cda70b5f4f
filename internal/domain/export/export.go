// Package export renders estimates as the plain text handed to share and
// clipboard targets.
package export

import (
	"fmt"
	"strings"

	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"
)

// Title is the heading used by every exported text and by share sheets.
func Title(e entities.Estimate) string {
	return "Orçamento - " + e.CustomerName
}

// ShareText renders the full estimate:
//
//	Orçamento - <customer>
//
//	<service>: <qty> <unit> - <line total>
//	...
//
//	Total: <total>
func ShareText(e entities.Estimate, symbol string) string {
	lines := make([]string, len(e.LineItems))
	for i, it := range e.LineItems {
		lines[i] = fmt.Sprintf("%s: %d %s - %s", it.ServiceName, it.Quantity, it.Unit, pricing.FormatCurrency(it.Total, symbol))
	}

	var b strings.Builder
	b.WriteString(Title(e))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nTotal: ")
	b.WriteString(pricing.FormatCurrency(e.Total, symbol))
	return b.String()
}

// SummaryText is the short two-line form used by the copy action.
func SummaryText(e entities.Estimate, symbol string) string {
	return Title(e) + "\nTotal: " + pricing.FormatCurrency(e.Total, symbol)
}

var statusLabels = map[entities.EstimateStatus]string{
	entities.EstimateStatusDraft:    "Rascunho",
	entities.EstimateStatusSent:     "Enviado",
	entities.EstimateStatusViewed:   "Visualizado",
	entities.EstimateStatusAccepted: "Aceito",
	entities.EstimateStatusRejected: "Recusado",
	entities.EstimateStatusExpired:  "Expirado",
}

// StatusLabel is the customer-facing name of a status. Unknown statuses read
// as drafts.
func StatusLabel(s entities.EstimateStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[entities.EstimateStatusDraft]
}
