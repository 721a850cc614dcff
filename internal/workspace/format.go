package workspace

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// separators returns the digit grouping and decimal separators of the printer's locale.
func separators(p *message.Printer) (group, point string) {
	s := strings.TrimPrefix(p.Sprintf("%.1f", 1234567.5), "1")

	if i := strings.Index(s, "234"); i >= 0 {
		group = s[:i]
	}

	point = "."
	if i := strings.LastIndex(s, "567"); i >= 0 {
		if sep := strings.TrimSuffix(s[i+3:], "5"); sep != "" {
			point = sep
		}
	}

	return group, point
}

// formatAmount renders d with two decimals in the printer's locale.
//
// The digits are taken from the decimal, only the separators are localized,
// so amounts beyond float64 precision are printed exactly.
func formatAmount(p *message.Printer, d decimal.Decimal) string {
	group, point := separators(p)
	integer, fraction, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}

	for i, r := range integer {
		if i > 0 && group != "" && (len(integer)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}

	b.WriteString(point)
	b.WriteString(fraction)

	return b.String()
}
