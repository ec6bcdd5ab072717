package display

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// PercentSymbol is the unit marker carried by percent values.
const PercentSymbol = "%"

// FormatPercent renders a ratio as a percentage.
//
// The ratio is multiplied by 100 before any rounding or banding step, so
// the configured thresholds are interpreted in percent units. The banding
// rules are those of [FormatNumber]. [Value.OriginalValue] and
// [Value.OriginalValueNumber] store the percent-scaled value, not the raw
// ratio, and [Value.Symbol] is always [PercentSymbol].
func FormatPercent(ratio float64, cfg *Config) Value {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return fallbackValue(formatFloat(ratio), PercentSymbol, ratio)
	}
	return formatScaledRatio(decimal.NewFromFloat(ratio), cfg)
}

// FormatPercentString is like [FormatPercent] for a textual ratio.
// Text that does not parse to a decimal number returns the fallback form
// with the text unchanged.
func FormatPercentString(text string, cfg *Config) Value {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return fallbackValue(text, PercentSymbol, math.NaN())
	}
	return formatScaledRatio(d, cfg)
}

// formatScaledRatio shifts ratio into percent units exactly, then renders it
// with the shared engine. The shift is decimal, so the percent-scaled
// original text carries no binary artifacts.
func formatScaledRatio(ratio decimal.Decimal, cfg *Config) Value {
	scaled := ratio.Shift(2)
	v, _ := scaled.Float64()
	return formatValue(v, scaled.String(), PercentSymbol, resolve(cfg, kindPercent))
}
