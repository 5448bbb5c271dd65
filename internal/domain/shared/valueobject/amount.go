package valueobject

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount scale bounds. Stored prices carry four fractional digits; amounts
// are never rendered with fewer than two.
const (
	AmountMinPlaces int32 = 2
	AmountMaxPlaces int32 = 4
)

// AmountMaxIntegerDigits is the integer width of a stored DECIMAL(18,4)
const AmountMaxIntegerDigits int32 = 14

var amountCeiling = decimal.New(1, AmountMaxIntegerDigits)

// ExceedsScale reports whether d has significant digits past AmountMaxPlaces.
// Trailing zeros do not count.
func ExceedsScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(AmountMaxPlaces))
}

// ExceedsIntegerDigits reports whether the integer part of d is wider than
// AmountMaxIntegerDigits
func ExceedsIntegerDigits(d decimal.Decimal) bool {
	return d.Abs().GreaterThanOrEqual(amountCeiling)
}

// currencyPrefixes are stripped from string amounts typed on the till
var currencyPrefixes = []string{"kshs.", "kshs", "ksh.", "ksh", "kes"}

// Amount is an exact base-10 shilling amount.
// On the wire it is a JSON string such as "26.00" or "10.125"; it is read
// from either a JSON number or a string.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal value
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// ParseAmount parses a till-entered amount such as "120", "1,200.50" or "Kshs. 120"
func ParseAmount(s string) (Amount, error) {
	cleaned := strings.TrimSpace(s)
	lower := strings.ToLower(cleaned)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// Decimal returns the underlying decimal value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsNegative returns true if the amount is below zero
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// String renders the amount with between two and four fractional digits
func (a Amount) String() string {
	return FormatDecimal(a.value)
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("amount is required")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseAmount(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	a.value = d
	return nil
}

// FormatDecimal rounds d to four places and renders it with the fewest
// fractional digits in [2, 4] that represent it exactly.
func FormatDecimal(d decimal.Decimal) string {
	rounded := d.Round(AmountMaxPlaces)
	for places := AmountMinPlaces; places < AmountMaxPlaces; places++ {
		if rounded.Equal(rounded.Round(places)) {
			return rounded.StringFixed(places)
		}
	}
	return rounded.StringFixed(AmountMaxPlaces)
}
