package display

import (
	"fmt"
	"strings"

	"github.com/WingsDevelopment/web3-robust-formatting/logger"
)

// Diagnostics accumulates the non-fatal warnings and errors of a robust
// operation. The zero value is empty and ready to append to.
type Diagnostics struct {
	Warnings []string
	Errors   []string
}

func (d *Diagnostics) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

// Empty reports whether d carries no warnings and no errors.
func (d Diagnostics) Empty() bool {
	return len(d.Warnings) == 0 && len(d.Errors) == 0
}

// Message renders d as a human-readable report: an "Errors:" bulleted block
// followed by a "Warnings:" bulleted block. Lines are trimmed and
// deduplicated, empty lines are dropped, and an empty section is omitted.
// Message returns "" when d is empty.
func (d Diagnostics) Message() string {
	errs := cleanLines(d.Errors)
	warns := cleanLines(d.Warnings)
	if len(errs) == 0 && len(warns) == 0 {
		return ""
	}
	var b strings.Builder
	writeBlock(&b, "Errors:", errs)
	writeBlock(&b, "Warnings:", warns)
	return strings.TrimSuffix(b.String(), "\n")
}

// MergeDiagnostics concatenates any number of diagnostics, deduplicating
// warnings and errors independently by exact string equality and preserving
// first-seen order.
func MergeDiagnostics(ds ...Diagnostics) Diagnostics {
	var out Diagnostics
	seenWarn := make(map[string]bool)
	seenErr := make(map[string]bool)
	for _, d := range ds {
		for _, w := range d.Warnings {
			if !seenWarn[w] {
				seenWarn[w] = true
				out.Warnings = append(out.Warnings, w)
			}
		}
		for _, e := range d.Errors {
			if !seenErr[e] {
				seenErr[e] = true
				out.Errors = append(out.Errors, e)
			}
		}
	}
	return out
}

func cleanLines(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func writeBlock(b *strings.Builder, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(heading)
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

// Result is the uniform outcome of a robust operation: a possibly absent
// value plus accumulated diagnostics. When Errors is non-empty, Value is
// always nil; the converse does not hold, since an operation can come up
// short of a value on warnings alone.
type Result[T any] struct {
	Value    *T
	Warnings []string
	Errors   []string
}

// OK reports whether r carries a value.
func (r Result[T]) OK() bool {
	return r.Value != nil
}

// ValueOr returns the carried value, or fallback when the value is absent.
func (r Result[T]) ValueOr(fallback T) T {
	if r.Value == nil {
		return fallback
	}
	return *r.Value
}

// Diagnostics returns the result's warnings and errors as one collection,
// ready for [MergeDiagnostics].
func (r Result[T]) Diagnostics() Diagnostics {
	return Diagnostics{Warnings: r.Warnings, Errors: r.Errors}
}

// MapResult converts the value of r with fn, carrying the diagnostics over
// unchanged. An absent value stays absent.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := Result[U]{Warnings: r.Warnings, Errors: r.Errors}
	if r.Value != nil {
		u := fn(*r.Value)
		out.Value = &u
	}
	return out
}

// Reporter receives the final merged diagnostics of a robust operation.
// The orchestrator calls it at most once per invocation, only when the
// diagnostics are non-empty, after the result is already decided: a
// Reporter can observe an outcome but never change it.
type Reporter interface {
	Report(context string, d Diagnostics)
}

// NewLoggerReporter returns a [Reporter] that writes reports to log:
// diagnostics carrying errors at error level, warning-only diagnostics at
// warning level.
func NewLoggerReporter(log logger.Logger) Reporter {
	return &loggerReporter{log: log}
}

type loggerReporter struct {
	log logger.Logger
}

func (r *loggerReporter) Report(context string, d Diagnostics) {
	if d.Empty() {
		return
	}
	if len(d.Errors) > 0 {
		r.log.Errorw("formatting failed", "context", context, "errors", d.Errors, "warnings", d.Warnings)
		return
	}
	r.log.Warnw("formatting degraded", "context", context, "warnings", d.Warnings)
}
