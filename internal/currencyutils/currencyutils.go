// Package currencyutils provides parsing and formatting of Brazilian real
// amounts as they appear on statements and in treasury reports.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an amount string into a decimal value. It accepts the
// pt-BR convention ("1.234,56", "R$ 150,00") as well as plain decimals
// ("1234.56"). The sign is preserved; callers decide what to do with it.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	// A comma after the last dot means pt-BR formatting: dots are thousand
	// separators and the comma is the decimal mark.
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	if lastComma > lastDot {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if lastComma >= 0 {
		// Dots as decimal mark, commas as thousand separators.
		s = strings.ReplaceAll(s, ",", "")
	}

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", raw, err)
	}
	return dec, nil
}

// FormatBRL renders a decimal amount in the pt-BR style used by the text
// reports: "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
