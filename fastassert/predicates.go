package fastassert

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Predicates are plain boolean helpers meant to be passed to Assert, e.g.
//
//	fastassert.Assert(fastassert.ValidUUID(id))
//
// which fails with "assertion failed: fastassert.ValidUUID(id)".

const (
	maxDecimalExponent = 18
	maxDecimalScale    = 18
)

// Positive reports n > 0.
func Positive(n int64) bool { return n > 0 }

// NonNegative reports n >= 0.
func NonNegative(n int64) bool { return n >= 0 }

// NotZero reports n != 0.
func NotZero(n int64) bool { return n != 0 }

// InRange reports min <= n <= max. An inverted range never matches.
func InRange(n, minimum, maximum int64) bool {
	return minimum <= n && n <= maximum
}

// ValidUUID reports whether s parses as a UUID.
func ValidUUID(s string) bool {
	if s == "" {
		return false
	}

	_, err := uuid.Parse(s)

	return err == nil
}

// ValidAmount reports whether the decimal exponent of d is within [-18, 18].
func ValidAmount(d decimal.Decimal) bool {
	exp := d.Exponent()

	return exp >= -maxDecimalExponent && exp <= maxDecimalExponent
}

// ValidScale reports whether scale is within [0, 18].
func ValidScale(scale int) bool {
	return scale >= 0 && scale <= maxDecimalScale
}

// PositiveDecimal reports d > 0.
func PositiveDecimal(d decimal.Decimal) bool { return d.IsPositive() }

// NonNegativeDecimal reports d >= 0.
func NonNegativeDecimal(d decimal.Decimal) bool { return !d.IsNegative() }
