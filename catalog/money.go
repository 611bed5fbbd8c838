package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount with a space as thousands separator and the
// currency appended, e.g. "12 500 руб" or "1 000,50 руб".
func FormatPrice(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	amount = amount.Round(2)
	neg := amount.IsNegative()
	amount = amount.Abs()

	intPart := amount.Truncate(0).String()
	frac := amount.Sub(amount.Truncate(0))

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(' ')
		b.WriteString(intPart[i : i+3])
	}

	if !frac.IsZero() {
		b.WriteByte(',')
		b.WriteString(strings.TrimPrefix(frac.StringFixed(2), "0."))
	}

	b.WriteByte(' ')
	b.WriteString(currency)
	return b.String()
}
