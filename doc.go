/*
Package display converts numeric values from untrusted or loosely-typed
sources into deterministic, locale-aware display strings. It combines
magnitude-banded formatting for numbers, percents, scaled integers, and
token amounts with a robust normalization pipeline that accumulates
warnings and errors instead of panicking.

# Features

  - Immutable display values, safe for concurrent use by multiple goroutines
  - Magnitude-banded rendering with locale-aware grouping and compact notation
  - Out-of-range floors and ceilings reported as flags, never baked into text
  - Exact conversion between base-unit integers and decimal strings
  - Robust wrappers that coerce unknown runtime types and never panic
  - Token-value arithmetic performed entirely in integer precision

# Representation

The package centers on two result structs: Value and Result. A Value holds
the banded display text, an always-compact variant, a separated sign and
symbol, the below-floor and above-ceiling flags, and the original input in
textual and numeric form. A Result pairs a possibly absent value with the
warnings and errors gathered while producing it; a non-empty error list
always means the value is absent.

# Formatting

FormatNumber rounds to the configured standard fraction digits first and
compares the absolute rounded value against the configured floor, ceiling,
and compact threshold, in that order. FormatPercent applies the same rules
after scaling the ratio into percent units. FormatScaledInteger converts a
base-unit integer to its exact decimal form before delegating to the number
rules. FormatTokenAmount keeps its own bands: no grouping below 10,
grouping below 1,000,000, and compact notation above, with an optional
fixed-precision override.

# Robust operations

Each formatter has a robust companion that accepts values of unknown
runtime type: it validates required fields, coerces every field without
short-circuiting, invokes the deterministic formatter under a fault guard,
and always returns a uniform result. CalculateTokenValue follows the same
protocol to multiply a balance by a unit price in integer arithmetic.

# Diagnostics

Warnings and errors are plain strings. MergeDiagnostics deduplicates them
across pipeline steps preserving first-seen order, and Message renders a
single human-readable report. A Reporter can be injected to observe the
final diagnostics of a robust operation; it is called at most once per
invocation and never affects the returned result.

# Errors

The deterministic formatters signal two sanctioned conditions,
ErrInvalidAmount and ErrMissingDecimals, for callers who intentionally
bypass the robust layer. The robust operations never return Go errors and
never panic; every fault is converted into an error diagnostic.
*/
package display
