package display

// Value is the outcome of a formatting operation.
// Its fields separate everything a rendering layer composes itself: the
// banded text, an always-compact variant, the sign, the display symbol,
// and the out-of-range flags. Value is designed to be safe for concurrent
// use by multiple goroutines.
type Value struct {
	// ViewValue is the banded display text.
	// It never contains the symbol or the sign.
	ViewValue string
	// Compact is the compact-notation text of the absolute input,
	// regardless of the band ViewValue selected.
	Compact string
	// Sign is "-" when the rounded value is negative, otherwise "".
	Sign string
	// BelowMin reports that a floor was configured and the absolute rounded
	// value fell below it. ViewValue then shows the floor itself.
	BelowMin bool
	// AboveMax reports that a ceiling was configured and the absolute rounded
	// value exceeded it. ViewValue then shows the ceiling itself.
	AboveMax bool
	// Symbol is the display symbol the caller supplied, or "%" for percents.
	// It is carried verbatim and never merged into the texts.
	Symbol string
	// OriginalValue is the exact textual form of the input.
	// Percent values store the percent-scaled text.
	OriginalValue string
	// OriginalValueNumber is the numeric input. It is lossy for values
	// beyond float64 precision and non-finite on the fallback path.
	OriginalValueNumber float64
	// Decimals is the decimal-place count of the source, set by the
	// scaled-integer and token-amount formatters.
	Decimals int
}
