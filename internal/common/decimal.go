package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NewDecimalFromString converts a string to a decimal.Decimal pointer.
// It parses the input string and returns a pointer to the decimal value,
// along with any parsing error. If the input string is empty, it returns nil.
func NewDecimalFromString(data string) (*decimal.Decimal, error) {
	if data != "" {
		amount, err := decimal.NewFromString(data)
		if err != nil {
			return nil, err
		}
		return &amount, nil
	}
	return nil, nil
}

// NewDecimalFromAmountText parses an amount as worded in an SMS body, where
// thousands are comma separated ("1,000" or "50,000.25").
func NewDecimalFromAmountText(data string) (*decimal.Decimal, error) {
	return NewDecimalFromString(strings.ReplaceAll(strings.TrimSpace(data), ",", ""))
}
