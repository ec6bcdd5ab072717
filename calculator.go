package display

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenValue is the product of a token balance and its unit price, scaled
// to the price's decimal-place count. Render it with
// [RobustFormatScaledInteger] or [FormatScaledInteger].
type TokenValue struct {
	// Raw is the value in base units of Decimals places.
	Raw *big.Int
	// Decimals equals the price's decimal-place count.
	Decimals int
}

// TokenValueOptions configures [CalculateTokenValue].
// Input is a field object carrying "amount", "price", "amountDecimals",
// and "priceDecimals".
type TokenValueOptions struct {
	Input any
	// Context is a free-text label prefixed to every diagnostic.
	Context string
	// RequiredFields names the input fields that must be present.
	// nil requires all four fields.
	RequiredFields []string
	// MissingFieldSeverity is the severity of missing-field diagnostics.
	MissingFieldSeverity Severity
	// Reporter, when set, receives the final diagnostics of this call.
	Reporter Reporter
}

// tokenValueRequired is the default required set of the calculator.
var tokenValueRequired = []string{"amount", "price", "amountDecimals", "priceDecimals"}

// CalculateTokenValue computes amount × price entirely in
// arbitrary-precision integer arithmetic:
//
//	raw = amount × scaledPrice / 10^amountDecimals
//
// where a big-integer price is taken as already scaled and any other
// numeric or textual price is scaled to priceDecimals exactly. The division
// truncates toward zero. The result's decimal-place count equals
// priceDecimals. A negative amount or price is an error, as is a decimal
// price without a known priceDecimals.
//
// CalculateTokenValue follows the robust protocol: it never panics and
// always returns a well-formed result.
func CalculateTokenValue(opts TokenValueOptions) Result[TokenValue] {
	var d Diagnostics
	obj, ok := fieldObject(opts.Input, &d)
	if !ok {
		return finish[TokenValue](opts.Context, opts.Reporter, d, nil)
	}
	required := opts.RequiredFields
	if required == nil {
		required = tokenValueRequired
	}
	if !validateRequired(obj, required, opts.MissingFieldSeverity, &d) {
		return finish[TokenValue](opts.Context, opts.Reporter, d, nil)
	}
	amount := normalizeBigInt("amount", obj["amount"], &d)
	amountDecimals := normalizeDecimals("amountDecimals", obj["amountDecimals"], &d)
	priceDecimals := normalizeDecimals("priceDecimals", obj["priceDecimals"], &d)
	price := normalizePrice("price", obj["price"], priceDecimals, &d)
	if amount != nil && amount.Sign() < 0 {
		d.errorf("amount: negative amount %v", amount)
	}
	if price != nil && price.Sign() < 0 {
		d.errorf("price: negative price %v", price)
	}
	if len(d.Errors) > 0 {
		return finish[TokenValue](opts.Context, opts.Reporter, d, nil)
	}
	if amount == nil || price == nil || amountDecimals == nil || priceDecimals == nil {
		return finish[TokenValue](opts.Context, opts.Reporter, d, nil)
	}
	var out TokenValue
	if !runProtected(&d, func() {
		out = TokenValue{Raw: tokenValue(amount, price, *amountDecimals), Decimals: *priceDecimals}
	}) {
		return finish[TokenValue](opts.Context, opts.Reporter, d, nil)
	}
	return finish(opts.Context, opts.Reporter, d, &out)
}

// normalizePrice coerces v to a scaled-integer price. A big integer is
// already in scaled units and passes through; every other supported form is
// a decimal price and is shifted by priceDecimals places exactly, truncating
// digits beyond that precision. A decimal price without a known
// priceDecimals is an error, never a silent default.
func normalizePrice(label string, v any, priceDecimals *int, d *Diagnostics) *big.Int {
	switch t := v.(type) {
	case nil:
		return nil
	case *big.Int:
		if t == nil {
			return nil
		}
		return new(big.Int).Set(t)
	case big.Int:
		return new(big.Int).Set(&t)
	}
	dec, ok := decimalPrice(label, v, d)
	if !ok {
		return nil
	}
	if priceDecimals == nil {
		d.errorf("%s: price decimals are required for a decimal price", label)
		return nil
	}
	return dec.Shift(int32(*priceDecimals)).Truncate(0).BigInt()
}

// decimalPrice parses the decimal forms a price may take.
func decimalPrice(label string, v any, d *Diagnostics) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		return floatPrice(label, t, d)
	case float32:
		return floatPrice(label, float64(t), d)
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int8:
		return decimal.NewFromInt(int64(t)), true
	case int16:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(t)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(t)), true
	case uint16:
		return decimal.NewFromInt(int64(t)), true
	case uint32:
		return decimal.NewFromInt(int64(t)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(t), 0), true
	case string:
		dec, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			d.errorf("%s: cannot parse %q as a price", label, t)
			return decimal.Decimal{}, false
		}
		return dec, true
	default:
		d.errorf("%s: unsupported type %T for a price", label, v)
		return decimal.Decimal{}, false
	}
}

func floatPrice(label string, f float64, d *Diagnostics) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		d.errorf("%s: non-finite number %v", label, f)
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// tokenValue multiplies amount by the scaled price and divides by
// 10^amountDecimals, truncating toward zero.
func tokenValue(amount, scaledPrice *big.Int, amountDecimals int) *big.Int {
	product := new(big.Int).Mul(amount, scaledPrice)
	return product.Quo(product, pow10(amountDecimals))
}
