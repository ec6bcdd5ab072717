package display

import "golang.org/x/text/language"

// Default formatting parameters, applied when the corresponding
// [Config] field is nil.
const (
	// DefaultLocale identifies the locale used for grouping and decimal
	// separators when none is configured.
	DefaultLocale = "en-US"
	// DefaultDecimals is the default fraction-digit count for standard,
	// compact, single-digit, and two-digit rendering.
	DefaultDecimals = 2
	// DefaultCompactThreshold is the absolute magnitude at which number and
	// percent rendering switches to compact notation.
	DefaultCompactThreshold = 1_000_000
	// DefaultMinDisplay is the default display floor for number and percent
	// rendering. Token amounts have no default floor.
	DefaultMinDisplay = 0.01
)

// maxDigits bounds every fraction-digit knob.
const maxDigits = 64

// Config carries optional formatting parameters.
// A nil Config or a nil field selects the documented default, so the zero
// value is ready to use. Thresholds set to zero disable the corresponding
// check rather than flagging every value.
type Config struct {
	// Locale is a BCP 47 tag, such as "en-US" or "de-DE".
	// Unknown tags fall back to [DefaultLocale].
	Locale string

	// StandardDecimals is the fraction-digit count for standard notation.
	StandardDecimals *int
	// CompactDecimals is the fraction-digit count for compact notation.
	CompactDecimals *int
	// SingleDigitDecimals is the fraction-digit count for token amounts
	// below 10. It also sets the precision of token floor and ceiling texts.
	SingleDigitDecimals *int
	// TwoDigitDecimals is the fraction-digit count for token amounts
	// from 10 up to 1,000,000.
	TwoDigitDecimals *int
	// FixedDecimals, when set, renders token amounts at a fixed precision
	// regardless of magnitude. Floor and ceiling checks still apply.
	FixedDecimals *int

	// CompactThreshold is the absolute magnitude at which number and percent
	// rendering switches to compact notation. Token amounts always switch
	// at 1,000,000.
	CompactThreshold *float64
	// MinDisplay is the display floor. Rounded values below it render as the
	// floor and are flagged [Value.BelowMin]. Zero disables the floor.
	MinDisplay *float64
	// MaxDisplay is the display ceiling. Rounded values above it render as
	// the ceiling and are flagged [Value.AboveMax]. Zero disables the ceiling.
	MaxDisplay *float64
}

// Int returns a pointer to i.
// It simplifies setting optional [Config] fields in place.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
// It simplifies setting optional [Config] fields in place.
func Float(f float64) *float64 { return &f }

// formatKind selects the per-formatter defaults of a [Config].
type formatKind uint8

const (
	kindNumber formatKind = iota
	kindPercent
	kindToken
)

// settings is a fully resolved configuration.
type settings struct {
	tag              language.Tag
	standardDecimals int
	compactDecimals  int
	singleDecimals   int
	twoDecimals      int
	fixedDecimals    int
	hasFixed         bool
	compactThreshold float64
	minDisplay       float64
	maxDisplay       float64
}

// resolve applies the defaults of kind to c. A nil c selects all defaults.
func resolve(c *Config, kind formatKind) settings {
	if c == nil {
		c = &Config{}
	}
	s := settings{
		tag:              localeTag(c.Locale),
		standardDecimals: digits(c.StandardDecimals, DefaultDecimals),
		compactDecimals:  digits(c.CompactDecimals, DefaultDecimals),
		singleDecimals:   digits(c.SingleDigitDecimals, DefaultDecimals),
		twoDecimals:      digits(c.TwoDigitDecimals, DefaultDecimals),
		compactThreshold: floatOr(c.CompactThreshold, DefaultCompactThreshold),
		maxDisplay:       floatOr(c.MaxDisplay, 0),
	}
	if c.FixedDecimals != nil {
		s.fixedDecimals = digits(c.FixedDecimals, 0)
		s.hasFixed = true
	}
	switch kind {
	case kindToken:
		s.minDisplay = floatOr(c.MinDisplay, 0)
	default:
		s.minDisplay = floatOr(c.MinDisplay, DefaultMinDisplay)
	}
	return s
}

// localeTag parses locale, falling back to [DefaultLocale] for unknown tags.
func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func digits(p *int, def int) int {
	d := def
	if p != nil {
		d = *p
	}
	if d < 0 {
		return 0
	}
	if d > maxDigits {
		return maxDigits
	}
	return d
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
