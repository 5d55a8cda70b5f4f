package pricing

import (
	"strings"
)

// FormatCurrency renders amount as "<symbol> 1.234,56": dot thousands
// separator, comma decimal separator, always two fraction digits. Halves round
// away from zero.
func FormatCurrency(amount float64, symbol string) string {
	fixed := fromFloat(amount).Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(symbol)
	b.WriteByte(' ')
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
