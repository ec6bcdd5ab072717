package display

import "fmt"

// Severity classifies missing required-field diagnostics.
// The zero value resolves to [SeverityWarning].
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// validateRequired checks each named field of input and reports the ones
// that are undefined or null at severity sev. It is purely name-driven and
// knows nothing about any formatter's input shape. A nil or empty field
// list requires nothing. validateRequired reports whether every named
// field was present.
func validateRequired(input map[string]any, fields []string, sev Severity, d *Diagnostics) bool {
	ok := true
	for _, f := range fields {
		v, present := input[f]
		if present && v != nil {
			continue
		}
		ok = false
		state := "null"
		if !present {
			state = "undefined"
		}
		msg := fmt.Sprintf("required field %q is %s", f, state)
		if sev == SeverityError {
			d.Errors = append(d.Errors, msg)
		} else {
			d.Warnings = append(d.Warnings, msg)
		}
	}
	return ok
}
