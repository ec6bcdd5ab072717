package display

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// compactBands lists compact-notation magnitudes in ascending order.
// The first band renders plain; a rounded mantissa reaching 1000 is bumped
// into the next band.
var compactBands = []struct {
	value  float64
	suffix string
}{
	{1, ""},
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
}

// FormatNumber renders value as a magnitude-banded display text.
//
// The value is first rounded to the configured standard fraction digits;
// every subsequent comparison uses the absolute rounded value. Bands are
// selected in priority order: a configured floor, a configured ceiling,
// compact notation at the compact threshold, and standard notation with
// locale grouping otherwise. [Value.Compact] is always the compact text of
// the absolute input, whichever band [Value.ViewValue] selected.
//
// Non-finite values return the fallback form: the textual input unchanged
// in both texts, with all flags false.
func FormatNumber(value float64, symbol string, cfg *Config) Value {
	return formatValue(value, formatFloat(value), symbol, resolve(cfg, kindNumber))
}

// FormatNumberString is like [FormatNumber] for a textual value, preserving
// the exact input text. Text that does not parse to a finite number returns
// the fallback form.
func FormatNumberString(text, symbol string, cfg *Config) Value {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fallbackValue(text, symbol, math.NaN())
	}
	return formatValue(v, text, symbol, resolve(cfg, kindNumber))
}

// formatValue renders v using the number and percent banding rules.
func formatValue(v float64, original, symbol string, s settings) Value {
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
	rounded := roundTo(v, s.standardDecimals)
	if rounded < 0 {
		out.Sign = "-"
	}
	abs := math.Abs(rounded)
	switch {
	case s.minDisplay > 0 && abs < s.minDisplay:
		out.BelowMin = true
		out.ViewValue = renderFixed(s.minDisplay, s.standardDecimals, s.tag)
	case s.maxDisplay > 0 && abs > s.maxDisplay:
		out.AboveMax = true
		out.ViewValue = renderFixed(s.maxDisplay, s.standardDecimals, s.tag)
	case abs >= s.compactThreshold:
		out.ViewValue = renderCompact(abs, s)
	default:
		out.ViewValue = renderFixed(abs, s.standardDecimals, s.tag)
	}
	return out
}

// fallbackValue carries a non-finite or unparseable input through unchanged.
func fallbackValue(original, symbol string, v float64) Value {
	return Value{
		ViewValue:           original,
		Compact:             original,
		Symbol:              symbol,
		OriginalValue:       original,
		OriginalValueNumber: v,
	}
}

// roundTo rounds v to d fraction digits, halves away from zero.
func roundTo(v float64, d int) float64 {
	p := math.Pow10(d)
	r := math.Round(v * p)
	if math.IsInf(r, 0) {
		return v
	}
	return r / p
}

// renderFixed renders v at exactly d fraction digits with locale grouping.
func renderFixed(v float64, d int, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(v, number.Scale(d)))
}

// renderTrimmed renders v at up to d fraction digits, dropping trailing
// zeros, with locale grouping.
func renderTrimmed(v float64, d int, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(d)))
}

// renderCompact renders v (non-negative, finite) in compact notation:
// a trimmed mantissa at the compact fraction digits and an upper-case
// magnitude suffix.
func renderCompact(v float64, s settings) string {
	i := len(compactBands) - 1
	for i > 0 && v < compactBands[i].value {
		i--
	}
	m := roundTo(v/compactBands[i].value, s.compactDecimals)
	if m >= 1000 && i+1 < len(compactBands) {
		i++
		m = roundTo(v/compactBands[i].value, s.compactDecimals)
	}
	return renderTrimmed(m, s.compactDecimals, s.tag) + compactBands[i].suffix
}

// formatFloat returns the shortest exact decimal text of v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
