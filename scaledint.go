package display

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FormatScaledInteger renders a base-unit integer, such as an oracle price
// feed answer, as a currency-like number. The amount is converted to its
// exact decimal form with [FormatBaseUnits] and rendered with the
// [FormatNumber] banding rules; the decimal-place count is attached to the
// result as [Value.Decimals].
//
// FormatScaledInteger returns an error if:
//   - the amount is nil ([ErrInvalidAmount]);
//   - decimals is negative ([ErrMissingDecimals]);
//   - decimals is greater than [MaxPlaces].
func FormatScaledInteger(amount *big.Int, decimals int, symbol string, cfg *Config) (Value, error) {
	if amount == nil {
		return Value{}, fmt.Errorf("formatting scaled integer: %w", ErrInvalidAmount)
	}
	if decimals < 0 {
		return Value{}, fmt.Errorf("formatting scaled integer: %w", ErrMissingDecimals)
	}
	text, err := FormatBaseUnits(amount, decimals)
	if err != nil {
		return Value{}, fmt.Errorf("formatting scaled integer: %w", err)
	}
	out := formatValue(decimalFloat(text), text, symbol, resolve(cfg, kindNumber))
	out.Decimals = decimals
	return out, nil
}

// FormatScaledIntegerString is like [FormatScaledInteger] for a textual
// amount: an optional sign followed by digits. See also [ParseBaseUnits]
// for amounts that already carry a decimal point.
func FormatScaledIntegerString(amount string, decimals int, symbol string, cfg *Config) (Value, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(amount), 10)
	if !ok {
		return Value{}, fmt.Errorf("formatting scaled integer: parsing %q: %w", amount, ErrInvalidAmount)
	}
	return FormatScaledInteger(i, decimals, symbol, cfg)
}

// MustFormatScaledInteger is like [FormatScaledInteger] but panics if the
// value cannot be formatted. It simplifies safe initialization of global
// variables holding display values.
func MustFormatScaledInteger(amount *big.Int, decimals int, symbol string, cfg *Config) Value {
	v, err := FormatScaledInteger(amount, decimals, symbol, cfg)
	if err != nil {
		panic(fmt.Sprintf("FormatScaledInteger(%v, %v, %q) failed: %v", amount, decimals, symbol, err))
	}
	return v
}

// decimalFloat converts exact decimal text to a float64 for banding.
// Magnitudes beyond the float64 range become infinities, which the engine
// routes to the fallback form carrying the exact text.
func decimalFloat(text string) float64 {
	v, _ := strconv.ParseFloat(text, 64)
	return v
}
