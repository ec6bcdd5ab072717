package display

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPlaces is the largest decimal-place count the conversion functions
// accept. It matches the widest scale seen on chain assets (a uint8).
const MaxPlaces = 255

var (
	// ErrInvalidAmount indicates that a base-unit amount is missing or is not
	// an integer.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingDecimals indicates that a decimal-place count is absent.
	ErrMissingDecimals = errors.New("missing decimals")

	errPlacesRange = errors.New("decimal places out of range")
)

// FormatBaseUnits converts an integer amount of base units to the exact
// decimal string amount / 10^places, with no precision loss.
// Trailing fractional zeros are not emitted.
//
// FormatBaseUnits returns an error if:
//   - the amount is nil;
//   - places is negative or greater than [MaxPlaces].
func FormatBaseUnits(amount *big.Int, places int) (string, error) {
	if amount == nil {
		return "", fmt.Errorf("converting base units: %w", ErrInvalidAmount)
	}
	if places < 0 || places > MaxPlaces {
		return "", fmt.Errorf("converting base units: %w", errPlacesRange)
	}
	return decimal.NewFromBigInt(amount, -int32(places)).String(), nil
}

// ParseBaseUnits converts a decimal string to an integer amount of base
// units equal to text × 10^places. Fractional digits beyond places are
// truncated, not rounded. See also [FormatBaseUnits].
//
// ParseBaseUnits returns an error if:
//   - the text is not a valid decimal number;
//   - places is negative or greater than [MaxPlaces].
func ParseBaseUnits(text string, places int) (*big.Int, error) {
	if places < 0 || places > MaxPlaces {
		return nil, fmt.Errorf("parsing base units: %w", errPlacesRange)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("parsing base units: %w", ErrInvalidAmount)
	}
	return d.Shift(int32(places)).Truncate(0).BigInt(), nil
}

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
