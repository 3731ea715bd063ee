// Package money handles the currency-formatted strings the API trades in:
// parsing them into numbers, doing line-item arithmetic and formatting totals
// back out. Amounts are dollar-denominated with a leading "$".
package money

import (
	"strconv"
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/pkg/errors"
)

// Symbol is the currency prefix used on all formatted amounts.
const Symbol = "$"

// ParseCurrency strips the leading currency symbol and parses the remainder
// as a decimal. Non-numeric input is rejected rather than producing NaN.
func ParseCurrency(s string) (float64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), Symbol)

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.Wrapf(domainerrors.ErrParseFailed, "invalid price %q", s)
	}

	return value, nil
}

// ParseQuantity parses a base-10 integer quantity.
func ParseQuantity(s string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(domainerrors.ErrParseFailed, "invalid quantity %q", s)
	}

	return quantity, nil
}

// FormatCurrency formats an amount to exactly two decimal digits with the
// currency symbol prefix.
func FormatCurrency(x float64) string {
	return Symbol + strconv.FormatFloat(x, 'f', 2, 64)
}

// LineTotal computes quantity x unit price for a single line item.
func LineTotal(quantity, price string) (float64, error) {
	qty, err := ParseQuantity(quantity)
	if err != nil {
		return 0, err
	}

	unitPrice, err := ParseCurrency(price)
	if err != nil {
		return 0, err
	}

	return float64(qty) * unitPrice, nil
}
