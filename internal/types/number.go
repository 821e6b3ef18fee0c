package types

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AsNumber coerces a loosely typed value (rule bound, catalog meta field,
// user input) into a float. Coercion failure means nil, never an error:
// a malformed rule bound is treated as an absent bound.
func AsNumber(value any) *float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case decimal.Decimal:
		f := v.InexactFloat64()
		return &f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// AsDecimal is AsNumber for money fields. Unparseable input yields zero,
// matching the calculator's treatment of non-numeric text entry.
func AsDecimal(value any) decimal.Decimal {
	if d, ok := value.(decimal.Decimal); ok {
		return d
	}
	if f := AsNumber(value); f != nil {
		return decimal.NewFromFloat(*f)
	}
	return decimal.Zero
}

// AsInt coerces to an integer quantity, truncating fractions. Unparseable
// input yields zero.
func AsInt(value any) int {
	if f := AsNumber(value); f != nil {
		return int(*f)
	}
	return 0
}
