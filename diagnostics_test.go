package display

import (
	"reflect"
	"strconv"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/WingsDevelopment/web3-robust-formatting/logger"
)

func TestDiagnostics_Message(t *testing.T) {
	tests := map[string]struct {
		d    Diagnostics
		want string
	}{
		"errors and warnings": {
			Diagnostics{Warnings: []string{"w1"}, Errors: []string{"e1", "e2"}},
			"Errors:\n- e1\n- e2\nWarnings:\n- w1",
		},
		"errors only": {
			Diagnostics{Errors: []string{"e1"}},
			"Errors:\n- e1",
		},
		"warnings only": {
			Diagnostics{Warnings: []string{"w1", "w2"}},
			"Warnings:\n- w1\n- w2",
		},
		"empty": {
			Diagnostics{},
			"",
		},
		"trims and dedupes": {
			Diagnostics{Warnings: []string{" w1 ", "w1", "", "w2"}},
			"Warnings:\n- w1\n- w2",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.d.Message(); got != tt.want {
				t.Errorf("Diagnostics%+v.Message() = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestDiagnostics_Empty(t *testing.T) {
	tests := map[string]struct {
		d    Diagnostics
		want bool
	}{
		"zero":     {Diagnostics{}, true},
		"warnings": {Diagnostics{Warnings: []string{"w"}}, false},
		"errors":   {Diagnostics{Errors: []string{"e"}}, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.d.Empty(); got != tt.want {
				t.Errorf("Diagnostics%+v.Empty() = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestMergeDiagnostics(t *testing.T) {
	got := MergeDiagnostics(
		Diagnostics{Warnings: []string{"w1", "w2"}, Errors: []string{"e1"}},
		Diagnostics{Warnings: []string{"w2", "w3"}, Errors: []string{"e1", "e2"}},
		Diagnostics{Warnings: []string{"e1"}},
	)
	want := Diagnostics{
		Warnings: []string{"w1", "w2", "w3", "e1"},
		Errors:   []string{"e1", "e2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeDiagnostics() = %+v, want %+v", got, want)
	}

	if got := MergeDiagnostics(); !got.Empty() {
		t.Errorf("MergeDiagnostics() = %+v, want empty", got)
	}
}

func TestResult(t *testing.T) {
	present := Result[int]{Value: Int(42), Warnings: []string{"w"}}
	absent := Result[int]{Errors: []string{"e"}}

	t.Run("ok", func(t *testing.T) {
		if !present.OK() {
			t.Error("Result with a value reported OK() = false")
		}
		if absent.OK() {
			t.Error("Result without a value reported OK() = true")
		}
	})

	t.Run("value or", func(t *testing.T) {
		if got := present.ValueOr(7); got != 42 {
			t.Errorf("ValueOr(7) = %v, want 42", got)
		}
		if got := absent.ValueOr(7); got != 7 {
			t.Errorf("ValueOr(7) = %v, want 7", got)
		}
	})

	t.Run("diagnostics", func(t *testing.T) {
		got := MergeDiagnostics(present.Diagnostics(), absent.Diagnostics())
		want := Diagnostics{Warnings: []string{"w"}, Errors: []string{"e"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("merged result diagnostics = %+v, want %+v", got, want)
		}
	})
}

func TestMapResult(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		in := Result[int]{Value: Int(42), Warnings: []string{"w"}}
		got := MapResult(in, strconv.Itoa)
		if got.Value == nil || *got.Value != "42" {
			t.Errorf("MapResult value = %v, want 42", got.Value)
		}
		if !reflect.DeepEqual(got.Warnings, in.Warnings) {
			t.Errorf("MapResult warnings = %q, want %q", got.Warnings, in.Warnings)
		}
	})

	t.Run("absent", func(t *testing.T) {
		in := Result[int]{Errors: []string{"e"}}
		got := MapResult(in, func(v int) string { return "" })
		if got.Value != nil {
			t.Errorf("MapResult value = %v, want nil", got.Value)
		}
		if !reflect.DeepEqual(got.Errors, in.Errors) {
			t.Errorf("MapResult errors = %q, want %q", got.Errors, in.Errors)
		}
	})
}

func TestNewLoggerReporter(t *testing.T) {
	t.Run("errors log at error level", func(t *testing.T) {
		log, observed := logger.TestObserved(t, zapcore.WarnLevel)
		NewLoggerReporter(log).Report("position", Diagnostics{
			Warnings: []string{"w1"},
			Errors:   []string{"e1"},
		})
		entries := observed.All()
		if len(entries) != 1 {
			t.Fatalf("logged %d entries, want 1", len(entries))
		}
		if entries[0].Level != zapcore.ErrorLevel || entries[0].Message != "formatting failed" {
			t.Errorf("logged (%v, %q), want (error, \"formatting failed\")", entries[0].Level, entries[0].Message)
		}
		if got := entries[0].ContextMap()["context"]; got != "position" {
			t.Errorf("logged context = %v, want position", got)
		}
	})

	t.Run("warnings log at warn level", func(t *testing.T) {
		log, observed := logger.TestObserved(t, zapcore.WarnLevel)
		NewLoggerReporter(log).Report("position", Diagnostics{Warnings: []string{"w1"}})
		entries := observed.All()
		if len(entries) != 1 {
			t.Fatalf("logged %d entries, want 1", len(entries))
		}
		if entries[0].Level != zapcore.WarnLevel || entries[0].Message != "formatting degraded" {
			t.Errorf("logged (%v, %q), want (warn, \"formatting degraded\")", entries[0].Level, entries[0].Message)
		}
	})

	t.Run("empty diagnostics log nothing", func(t *testing.T) {
		log, observed := logger.TestObserved(t, zapcore.DebugLevel)
		NewLoggerReporter(log).Report("position", Diagnostics{})
		if n := observed.Len(); n != 0 {
			t.Errorf("logged %d entries, want 0", n)
		}
	})
}
