package display

import (
	"math"
	"math/big"
	"reflect"
	"testing"
)

func TestCalculateTokenValue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := map[string]struct {
			input        map[string]any
			wantRaw      string
			wantDecimals int
			wantWarnings []string
		}{
			"float price": {
				map[string]any{"amount": mustBigInt("2500000000000000000"), "price": 1.02, "amountDecimals": 18, "priceDecimals": 8},
				"255000000", 8, nil,
			},
			"string price": {
				map[string]any{"amount": mustBigInt("2500000000000000000"), "price": "1.02", "amountDecimals": 18, "priceDecimals": 8},
				"255000000", 8, nil,
			},
			"scaled big int price": {
				map[string]any{"amount": mustBigInt("2500000000000000000"), "price": big.NewInt(102000000), "amountDecimals": 18, "priceDecimals": 8},
				"255000000", 8, nil,
			},
			"int price": {
				map[string]any{"amount": big.NewInt(3), "price": 2, "amountDecimals": 0, "priceDecimals": 2},
				"600", 2, nil,
			},
			"zero amount": {
				map[string]any{"amount": big.NewInt(0), "price": 1.02, "amountDecimals": 18, "priceDecimals": 8},
				"0", 8, nil,
			},
			"truncates toward zero": {
				map[string]any{"amount": big.NewInt(999), "price": "1.019", "amountDecimals": 2, "priceDecimals": 2},
				"1008", 2, nil,
			},
			"int amount warns": {
				map[string]any{"amount": 25, "price": 2, "amountDecimals": 0, "priceDecimals": 2},
				"5000", 2, []string{"amount: implicitly converted number 25 to a big integer"},
			},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got := CalculateTokenValue(TokenValueOptions{Input: tt.input})
				if !got.OK() {
					t.Fatalf("CalculateTokenValue(%v) = %+v, want a value", tt.input, got)
				}
				if got.Value.Raw.String() != tt.wantRaw || got.Value.Decimals != tt.wantDecimals {
					t.Errorf("CalculateTokenValue(%v) = (%v, %d), want (%v, %d)",
						tt.input, got.Value.Raw, got.Value.Decimals, tt.wantRaw, tt.wantDecimals)
				}
				if !reflect.DeepEqual(got.Warnings, tt.wantWarnings) {
					t.Errorf("CalculateTokenValue(%v) warnings = %q, want %q", tt.input, got.Warnings, tt.wantWarnings)
				}
				if len(got.Errors) != 0 {
					t.Errorf("CalculateTokenValue(%v) errors = %q, want none", tt.input, got.Errors)
				}
			})
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			opts TokenValueOptions
			want []string
		}{
			"negative amount": {
				TokenValueOptions{Input: map[string]any{"amount": big.NewInt(-1), "price": 1.02, "amountDecimals": 18, "priceDecimals": 8}},
				[]string{"amount: negative amount -1"},
			},
			"negative price": {
				TokenValueOptions{Input: map[string]any{"amount": big.NewInt(1), "price": "-1.02", "amountDecimals": 18, "priceDecimals": 8}},
				[]string{"price: negative price -102000000"},
			},
			"unparseable price": {
				TokenValueOptions{Input: map[string]any{"amount": big.NewInt(1), "price": "abc", "amountDecimals": 18, "priceDecimals": 8}},
				[]string{`price: cannot parse "abc" as a price`},
			},
			"non-finite price": {
				TokenValueOptions{Input: map[string]any{"amount": big.NewInt(1), "price": math.NaN(), "amountDecimals": 18, "priceDecimals": 8}},
				[]string{"price: non-finite number NaN"},
			},
			"decimal price needs decimals": {
				TokenValueOptions{
					Input:          map[string]any{"amount": big.NewInt(1), "price": 1.02, "amountDecimals": 0},
					RequiredFields: []string{},
				},
				[]string{"price: price decimals are required for a decimal price"},
			},
			"non-map input": {
				TokenValueOptions{Input: 5},
				[]string{"input: unsupported type int for a field object"},
			},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got := CalculateTokenValue(tt.opts)
				if got.OK() {
					t.Errorf("CalculateTokenValue(%+v) = %+v, want no value", tt.opts, got)
				}
				if !reflect.DeepEqual(got.Errors, tt.want) {
					t.Errorf("CalculateTokenValue(%+v) errors = %q, want %q", tt.opts, got.Errors, tt.want)
				}
			})
		}
	})

	t.Run("default policy requires all fields", func(t *testing.T) {
		got := CalculateTokenValue(TokenValueOptions{Input: map[string]any{}})
		want := []string{
			`required field "amount" is undefined`,
			`required field "price" is undefined`,
			`required field "amountDecimals" is undefined`,
			`required field "priceDecimals" is undefined`,
		}
		if got.OK() || !reflect.DeepEqual(got.Warnings, want) {
			t.Errorf("CalculateTokenValue({}) = %+v, want warnings %q", got, want)
		}
	})

	t.Run("context and reporter", func(t *testing.T) {
		rep := &recordingReporter{}
		got := CalculateTokenValue(TokenValueOptions{
			Input:    map[string]any{"amount": big.NewInt(-1), "price": 1.02, "amountDecimals": 18, "priceDecimals": 8},
			Context:  "holdings",
			Reporter: rep,
		})
		want := []string{"holdings: amount: negative amount -1"}
		if !reflect.DeepEqual(got.Errors, want) {
			t.Errorf("CalculateTokenValue(negative amount) errors = %q, want %q", got.Errors, want)
		}
		if rep.calls != 1 || rep.context != "holdings" {
			t.Errorf("reporter called %d times with context %q, want once with %q", rep.calls, rep.context, "holdings")
		}
	})
}
