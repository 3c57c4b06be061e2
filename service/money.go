package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds to 2 decimals with half-up semantics, matching how the
// amounts are later displayed. Banker's rounding would drift from the
// rendered figures by a cent.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatCurrency renders "€ D.DD". Reapplying it to its own numeric payload
// yields the same string.
func FormatCurrency(v float64) string {
	return "€ " + decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// FormatRate renders an annual percentage with two decimals, e.g. "7.86% ao ano".
func FormatRate(v float64) string {
	return fmt.Sprintf("%s%% ao ano", decimal.NewFromFloat(v).Round(2).StringFixed(2))
}
