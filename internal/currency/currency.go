// Package currency formats amounts for display in Brazilian reais.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a non-negative amount with exactly two fractional digits,
// comma as the decimal separator and dot thousands separators:
// 1234.5 -> "R$ 1.234,50".
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
