package display

// The robust wrappers accept values of unknown runtime type and never
// panic. Each runs the same sequence: compute the effective required-field
// set, validate presence, normalize every relevant field without
// short-circuiting, and only then invoke the deterministic formatter under
// a fault guard. Any error leaves the value absent; missing inputs without
// an error leave the value absent silently.

// NumberOptions configures [RobustFormatNumber].
type NumberOptions struct {
	// Input is the value to format, in any supported runtime form.
	Input any
	// Symbol is the display symbol, a string or absent.
	Symbol any
	// Config carries the formatting parameters.
	Config *Config
	// Context is a free-text label prefixed to every diagnostic.
	Context string
	// RequiredFields names the input fields that must be present.
	// nil selects the operation's default policy; an empty non-nil slice
	// requires nothing.
	RequiredFields []string
	// MissingFieldSeverity is the severity of missing-field diagnostics.
	MissingFieldSeverity Severity
	// Reporter, when set, receives the final diagnostics of this call.
	Reporter Reporter
}

// PercentOptions configures [RobustFormatPercent].
type PercentOptions struct {
	// Input is the ratio to format, in any supported runtime form.
	Input any
	// Multiplier scales the ratio before formatting. Defaults to 1.
	Multiplier any
	// Divider divides the ratio before formatting. Defaults to 1.
	// A divider that normalizes to zero is an error, never a division.
	Divider any
	// Config carries the formatting parameters.
	Config *Config
	// Context is a free-text label prefixed to every diagnostic.
	Context string
	// RequiredFields names the input fields that must be present.
	RequiredFields []string
	// MissingFieldSeverity is the severity of missing-field diagnostics.
	MissingFieldSeverity Severity
	// Reporter, when set, receives the final diagnostics of this call.
	Reporter Reporter
}

// ScaledIntegerOptions configures [RobustFormatScaledInteger].
// Input is a field object carrying "amount", "decimals", and optionally
// "symbol".
type ScaledIntegerOptions struct {
	Input any
	// Config carries the formatting parameters.
	Config *Config
	// Context is a free-text label prefixed to every diagnostic.
	Context string
	// RequiredFields names the input fields that must be present.
	// nil selects the default policy: "decimals" is required, unless the
	// amount field itself is absent.
	RequiredFields []string
	// MissingFieldSeverity is the severity of missing-field diagnostics.
	MissingFieldSeverity Severity
	// Reporter, when set, receives the final diagnostics of this call.
	Reporter Reporter
}

// TokenAmountOptions configures [RobustFormatTokenAmount].
// Input is a field object carrying "amount", "decimals", and optionally
// "symbol".
type TokenAmountOptions struct {
	Input any
	// Config carries the formatting parameters.
	Config *Config
	// Context is a free-text label prefixed to every diagnostic.
	Context string
	// RequiredFields names the input fields that must be present.
	// nil selects the default policy: "decimals" is required, unless the
	// amount field itself is absent.
	RequiredFields []string
	// MissingFieldSeverity is the severity of missing-field diagnostics.
	MissingFieldSeverity Severity
	// Reporter, when set, receives the final diagnostics of this call.
	Reporter Reporter
}

// bigintRequired is the default required set of the field-object wrappers.
var bigintRequired = []string{"decimals"}

// RobustFormatNumber formats a loosely-typed value with the [FormatNumber]
// rules. It never panics and always returns a well-formed result.
func RobustFormatNumber(opts NumberOptions) Result[Value] {
	var d Diagnostics
	if !validateRequired(fieldMap(opts.Input), opts.RequiredFields, opts.MissingFieldSeverity, &d) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	value := normalizeNumber("value", opts.Input, &d)
	symbol := normalizeSymbol("symbol", opts.Symbol, &d)
	if len(d.Errors) > 0 || value == nil {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	var out Value
	if !runProtected(&d, func() {
		out = FormatNumber(*value, stringOf(symbol), opts.Config)
	}) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	return finish(opts.Context, opts.Reporter, d, &out)
}

// RobustFormatPercent formats a loosely-typed ratio with the
// [FormatPercent] rules. The ratio is multiplied by the normalized
// multiplier and divided by the normalized divider before formatting.
// It never panics and always returns a well-formed result.
func RobustFormatPercent(opts PercentOptions) Result[Value] {
	var d Diagnostics
	if !validateRequired(fieldMap(opts.Input), opts.RequiredFields, opts.MissingFieldSeverity, &d) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	value := normalizeNumber("value", opts.Input, &d)
	multiplier := normalizeNumber("multiplier", opts.Multiplier, &d)
	divider := normalizeNumber("divider", opts.Divider, &d)
	if divider != nil && *divider == 0 {
		d.errorf("divider: must not be zero")
	}
	if len(d.Errors) > 0 || value == nil {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	ratio := *value * floatOr(multiplier, 1) / floatOr(divider, 1)
	var out Value
	if !runProtected(&d, func() {
		out = FormatPercent(ratio, opts.Config)
	}) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	return finish(opts.Context, opts.Reporter, d, &out)
}

// RobustFormatScaledInteger formats a loosely-typed field object with the
// [FormatScaledInteger] rules. It never panics and always returns a
// well-formed result; the formatter's sanctioned faults surface as error
// diagnostics.
func RobustFormatScaledInteger(opts ScaledIntegerOptions) Result[Value] {
	var d Diagnostics
	obj, ok := fieldObject(opts.Input, &d)
	if !ok {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	required := effectiveRequired(obj, opts.RequiredFields)
	if !validateRequired(obj, required, opts.MissingFieldSeverity, &d) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	amount := normalizeBigInt("amount", obj["amount"], &d)
	decimals := normalizeDecimals("decimals", obj["decimals"], &d)
	symbol := normalizeSymbol("symbol", obj["symbol"], &d)
	if len(d.Errors) > 0 || amount == nil || decimals == nil {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	var out Value
	var err error
	if !runProtected(&d, func() {
		out, err = FormatScaledInteger(amount, *decimals, stringOf(symbol), opts.Config)
	}) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	if err != nil {
		d.errorf("%v", err)
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	return finish(opts.Context, opts.Reporter, d, &out)
}

// RobustFormatTokenAmount formats a loosely-typed field object with the
// [FormatTokenAmount] rules. It never panics and always returns a
// well-formed result.
func RobustFormatTokenAmount(opts TokenAmountOptions) Result[Value] {
	var d Diagnostics
	obj, ok := fieldObject(opts.Input, &d)
	if !ok {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	required := effectiveRequired(obj, opts.RequiredFields)
	if !validateRequired(obj, required, opts.MissingFieldSeverity, &d) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	amount := normalizeBigInt("amount", obj["amount"], &d)
	decimals := normalizeDecimals("decimals", obj["decimals"], &d)
	symbol := normalizeSymbol("symbol", obj["symbol"], &d)
	if len(d.Errors) > 0 {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	var out Value
	var formatted bool
	if !runProtected(&d, func() {
		out, formatted = FormatTokenAmount(TokenAmount{
			Amount:   amount,
			Decimals: decimals,
			Symbol:   stringOf(symbol),
		}, opts.Config)
	}) {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	if !formatted {
		return finish[Value](opts.Context, opts.Reporter, d, nil)
	}
	return finish(opts.Context, opts.Reporter, d, &out)
}

// effectiveRequired computes the required-field set of a field-object
// wrapper from the raw input, before validation runs. An explicit caller
// list always wins. The default set requires "decimals", dropped entirely
// when the amount field is absent or null, so an amount-less call is not
// penalized for missing decimals.
func effectiveRequired(obj map[string]any, explicit []string) []string {
	if explicit != nil {
		return explicit
	}
	if v, ok := obj["amount"]; !ok || v == nil {
		return nil
	}
	return bigintRequired
}

// fieldObject interprets v as a field object. Absent input is an empty
// object; any non-map input is an error.
func fieldObject(v any, d *Diagnostics) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case map[string]any:
		return t, true
	default:
		d.errorf("input: unsupported type %T for a field object", v)
		return nil, false
	}
}

// fieldMap exposes v's fields for validation when v happens to be a field
// object. Scalar inputs have no fields, so every required name reports
// undefined.
func fieldMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// runProtected invokes fn, converting a panic into an error diagnostic.
func runProtected(d *Diagnostics, fn func()) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			d.errorf("unexpected fault: %v", r)
			completed = false
		}
	}()
	fn()
	return true
}

// finish closes out a robust operation: prefixes the context onto every
// diagnostic, merges duplicates, drops the value if any error accumulated,
// and reports once when there is anything to report.
func finish[T any](context string, rep Reporter, d Diagnostics, value *T) Result[T] {
	d = MergeDiagnostics(prefixDiagnostics(context, d))
	if len(d.Errors) > 0 {
		value = nil
	}
	if rep != nil && !d.Empty() {
		rep.Report(context, d)
	}
	return Result[T]{Value: value, Warnings: d.Warnings, Errors: d.Errors}
}

// prefixDiagnostics labels every message with the operation's context.
func prefixDiagnostics(context string, d Diagnostics) Diagnostics {
	if context == "" {
		return d
	}
	out := Diagnostics{
		Warnings: make([]string, len(d.Warnings)),
		Errors:   make([]string, len(d.Errors)),
	}
	for i, w := range d.Warnings {
		out.Warnings[i] = context + ": " + w
	}
	for i, e := range d.Errors {
		out.Errors[i] = context + ": " + e
	}
	return out
}

// stringOf unwraps an optional string.
func stringOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
