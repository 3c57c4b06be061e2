package document

import (
	"strings"

	"github.com/shopspring/decimal"

	"docbot/service"
)

// NumberFormat selects how a template renders numeric session values. The
// two conventions are configuration on the template spec, never hardcoded at
// a call site.
type NumberFormat int

const (
	// DecimalComma renders "1234,56" with trailing zeros stripped
	// ("100,00" becomes "100"). Used by the contract.
	DecimalComma NumberFormat = iota
	// Currency renders "€ 1234.56" with exactly two decimals. Used by the
	// notice letters.
	Currency
)

// Number formats v under the convention, rounding half-up to 2 decimals.
func (f NumberFormat) Number(v float64) string {
	switch f {
	case Currency:
		return service.FormatCurrency(v)
	default:
		s := decimal.NewFromFloat(v).Round(2).StringFixed(2)
		s = strings.ReplaceAll(s, ".", ",")
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ",")
	}
}
