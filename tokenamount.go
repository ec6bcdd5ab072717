package display

import (
	"math"
	"math/big"
)

// tokenCompactThreshold is the fixed magnitude at which token amounts
// switch to compact notation.
const tokenCompactThreshold = 1_000_000

// TokenAmount bundles a base-unit token balance with its decimal-place
// count and display symbol, the shape wallet and position feeds deliver.
type TokenAmount struct {
	Amount   *big.Int
	Decimals *int
	Symbol   string
}

// FormatTokenAmount renders a token balance.
//
// Token amounts use their own bands, distinct from [FormatNumber]: after a
// configured floor and ceiling, absolute values below 10 render without
// grouping at the single-digit fraction count, values below 1,000,000
// render with grouping at the two-digit fraction count, and larger values
// render in compact notation. Trailing fractional zeros are dropped. When
// [Config.FixedDecimals] is set, standard notation at that fixed precision
// replaces the magnitude bands; the floor and ceiling still apply.
//
// The second return value reports whether the input was structurally
// complete: a missing amount or decimal-place count yields ok = false and
// no Value, never an error.
func FormatTokenAmount(in TokenAmount, cfg *Config) (Value, bool) {
	if in.Amount == nil || in.Decimals == nil || *in.Decimals < 0 {
		return Value{}, false
	}
	text, err := FormatBaseUnits(in.Amount, *in.Decimals)
	if err != nil {
		return Value{}, false
	}
	out := formatTokenValue(decimalFloat(text), text, in.Symbol, resolve(cfg, kindToken))
	out.Decimals = *in.Decimals
	return out, true
}

// formatTokenValue renders v using the token banding rules.
func formatTokenValue(v float64, original, symbol string, s settings) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallbackValue(original, symbol, v)
	}
	out := Value{
		Symbol:              symbol,
		OriginalValue:       original,
		OriginalValueNumber: v,
		Compact:             renderCompact(math.Abs(v), s),
	}
	if v == 0 {
		out.ViewValue = renderFixed(0, s.standardDecimals, s.tag)
		return out
	}
	// Floor and ceiling compare the value rounded at the precision about to
	// render: the fixed override when set, the single-digit count otherwise.
	precision := s.singleDecimals
	if s.hasFixed {
		precision = s.fixedDecimals
	}
	rounded := roundTo(v, precision)
	if rounded < 0 {
		out.Sign = "-"
	}
	abs := math.Abs(rounded)
	switch {
	case s.minDisplay > 0 && abs < s.minDisplay:
		out.BelowMin = true
		out.ViewValue = renderTrimmed(s.minDisplay, s.singleDecimals, s.tag)
	case s.maxDisplay > 0 && abs > s.maxDisplay:
		out.AboveMax = true
		out.ViewValue = renderTrimmed(s.maxDisplay, s.singleDecimals, s.tag)
	case s.hasFixed:
		out.ViewValue = renderFixed(abs, s.fixedDecimals, s.tag)
	case abs < 10:
		out.ViewValue = renderTrimmed(abs, s.singleDecimals, s.tag)
	case abs < tokenCompactThreshold:
		out.ViewValue = renderTrimmed(abs, s.twoDecimals, s.tag)
	default:
		out.ViewValue = renderCompact(abs, s)
	}
	return out
}
