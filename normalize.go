package display

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxSafeInt bounds conversions between big integers and float64: 2^53 is
// the largest magnitude at which every integer is exactly representable.
var maxSafeInt = big.NewInt(1 << 53)

// The normalize functions coerce a value of unknown runtime type into the
// typed form a formatter requires. Each returns nil for an absent or
// unconvertible value; lossy or implicit conversions append a warning and
// unrecoverable inputs append an error to d. No coercion ever panics, and
// none has any effect beyond the returned value and the appended
// diagnostics. The label names the field in every message.

// normalizeBigInt coerces v to an arbitrary-precision integer.
// It accepts big integers natively, and integer-valued numbers or
// optional-sign digit strings with a warning.
func normalizeBigInt(label string, v any, d *Diagnostics) *big.Int {
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
	case int:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case int8:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case int16:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case int32:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case int64:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(t)
	case uint:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return new(big.Int).SetUint64(uint64(t))
	case uint8:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case uint16:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case uint32:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return big.NewInt(int64(t))
	case uint64:
		d.warnf("%s: implicitly converted number %v to a big integer", label, t)
		return new(big.Int).SetUint64(t)
	case float32:
		return floatBigInt(label, float64(t), d)
	case float64:
		return floatBigInt(label, t, d)
	case string:
		s := strings.TrimSpace(t)
		if !isIntegerText(s) {
			d.errorf("%s: cannot parse %q as a big integer", label, t)
			return nil
		}
		d.warnf("%s: implicitly converted string %q to a big integer", label, t)
		i, _ := new(big.Int).SetString(s, 10)
		return i
	default:
		d.errorf("%s: unsupported type %T for a big integer", label, v)
		return nil
	}
}

func floatBigInt(label string, f float64, d *Diagnostics) *big.Int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		d.errorf("%s: non-finite number cannot be a big integer", label)
		return nil
	}
	if math.Trunc(f) != f {
		d.errorf("%s: number %v is not an integer", label, f)
		return nil
	}
	d.warnf("%s: implicitly converted number %v to a big integer", label, f)
	i, _ := big.NewFloat(f).Int(nil)
	return i
}

// normalizeDecimals coerces v to a decimal-place count in [0, MaxPlaces].
// Whole numbers pass natively; big integers and digit strings convert with
// a warning. Negative, fractional, or out-of-range values are errors.
func normalizeDecimals(label string, v any, d *Diagnostics) *int {
	switch t := v.(type) {
	case nil:
		return nil
	case int:
		return checkedDecimals(label, int64(t), d)
	case int8:
		return checkedDecimals(label, int64(t), d)
	case int16:
		return checkedDecimals(label, int64(t), d)
	case int32:
		return checkedDecimals(label, int64(t), d)
	case int64:
		return checkedDecimals(label, t, d)
	case uint:
		return checkedDecimals(label, int64(t), d)
	case uint8:
		return checkedDecimals(label, int64(t), d)
	case uint16:
		return checkedDecimals(label, int64(t), d)
	case uint32:
		return checkedDecimals(label, int64(t), d)
	case uint64:
		if t > MaxPlaces {
			d.errorf("%s: decimals %v out of range", label, t)
			return nil
		}
		return checkedDecimals(label, int64(t), d)
	case float32:
		return floatDecimals(label, float64(t), d)
	case float64:
		return floatDecimals(label, t, d)
	case *big.Int:
		if t == nil {
			return nil
		}
		if !t.IsInt64() {
			d.errorf("%s: decimals %v out of range", label, t)
			return nil
		}
		d.warnf("%s: implicitly converted big integer %v to a decimal count", label, t)
		return checkedDecimals(label, t.Int64(), d)
	case big.Int:
		return normalizeDecimals(label, &t, d)
	case string:
		s := strings.TrimSpace(t)
		if !isDigitText(s) {
			d.errorf("%s: cannot parse %q as a decimal count", label, t)
			return nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			d.errorf("%s: decimals %q out of range", label, t)
			return nil
		}
		d.warnf("%s: implicitly converted string %q to a decimal count", label, t)
		return checkedDecimals(label, i, d)
	default:
		d.errorf("%s: unsupported type %T for a decimal count", label, v)
		return nil
	}
}

func floatDecimals(label string, f float64, d *Diagnostics) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		d.errorf("%s: decimals %v is not a whole number", label, f)
		return nil
	}
	if f < 0 || f > MaxPlaces {
		d.errorf("%s: decimals %v out of range", label, f)
		return nil
	}
	return checkedDecimals(label, int64(f), d)
}

func checkedDecimals(label string, i int64, d *Diagnostics) *int {
	if i < 0 {
		d.errorf("%s: negative decimals %v", label, i)
		return nil
	}
	if i > MaxPlaces {
		d.errorf("%s: decimals %v out of range", label, i)
		return nil
	}
	n := int(i)
	return &n
}

// normalizeNumber coerces v to a finite float64.
// Native numbers pass silently; parseable strings and big integers within
// the safe range convert with a warning. Non-finite values are errors.
func normalizeNumber(label string, v any, d *Diagnostics) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return finiteNumber(label, t, d)
	case float32:
		return finiteNumber(label, float64(t), d)
	case int:
		return numberOf(float64(t))
	case int8:
		return numberOf(float64(t))
	case int16:
		return numberOf(float64(t))
	case int32:
		return numberOf(float64(t))
	case int64:
		return numberOf(float64(t))
	case uint:
		return numberOf(float64(t))
	case uint8:
		return numberOf(float64(t))
	case uint16:
		return numberOf(float64(t))
	case uint32:
		return numberOf(float64(t))
	case uint64:
		return numberOf(float64(t))
	case *big.Int:
		if t == nil {
			return nil
		}
		if t.CmpAbs(maxSafeInt) > 0 {
			d.errorf("%s: big integer %v exceeds the safe number range", label, t)
			return nil
		}
		d.warnf("%s: implicitly converted big integer %v to a number", label, t)
		f, _ := new(big.Float).SetInt(t).Float64()
		return numberOf(f)
	case big.Int:
		return normalizeNumber(label, &t, d)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			d.errorf("%s: cannot parse %q as a number", label, t)
			return nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			d.errorf("%s: non-finite number %q", label, t)
			return nil
		}
		d.warnf("%s: implicitly converted string %q to a number", label, t)
		return numberOf(f)
	default:
		d.errorf("%s: unsupported type %T for a number", label, v)
		return nil
	}
}

func finiteNumber(label string, f float64, d *Diagnostics) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		d.errorf("%s: non-finite number %v", label, f)
		return nil
	}
	return numberOf(f)
}

func numberOf(f float64) *float64 {
	return &f
}

// normalizeSymbol coerces v to a display symbol.
// Only strings and absence are accepted.
func normalizeSymbol(label string, v any, d *Diagnostics) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return &t
	default:
		d.errorf("%s: unsupported type %T for a symbol", label, v)
		return nil
	}
}

// isIntegerText reports whether s is an optional sign followed by digits.
func isIntegerText(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return isDigitText(s)
}

// isDigitText reports whether s is one or more digits, with no sign.
func isDigitText(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
