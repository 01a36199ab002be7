package ddouble

import (
	"golang.org/x/exp/constraints"
)

// Scalar is the set of Go number types that can be mixed with a DDouble.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// From promotes any Go number to a DDouble. Integers of every width are
// represented exactly; floats are embedded in the high limb.
func From[T Scalar](v T) DDouble {
	if T(1)/2 != 0 {
		return FromFloat64(float64(v))
	}
	var zero T
	if zero-1 < 0 {
		return FromInt64(int64(v))
	}
	return FromUint64(uint64(v))
}

// AddScalar returns x + v.
func AddScalar[T Scalar](x DDouble, v T) DDouble { return x.Add(From(v)) }

// SubScalar returns x - v.
func SubScalar[T Scalar](x DDouble, v T) DDouble { return x.Sub(From(v)) }

// MulScalar returns x * v.
func MulScalar[T Scalar](x DDouble, v T) DDouble { return x.Mul(From(v)) }

// QuoScalar returns x / v.
func QuoScalar[T Scalar](x DDouble, v T) DDouble { return x.Quo(From(v)) }

// RemScalar returns x % v.
func RemScalar[T Scalar](x DDouble, v T) DDouble { return x.Rem(From(v)) }

// ScalarAdd returns v + x.
func ScalarAdd[T Scalar](v T, x DDouble) DDouble { return From(v).Add(x) }

// ScalarSub returns v - x.
func ScalarSub[T Scalar](v T, x DDouble) DDouble { return From(v).Sub(x) }

// ScalarMul returns v * x.
func ScalarMul[T Scalar](v T, x DDouble) DDouble { return From(v).Mul(x) }

// ScalarQuo returns v / x.
func ScalarQuo[T Scalar](v T, x DDouble) DDouble { return From(v).Quo(x) }

// ScalarRem returns v % x.
func ScalarRem[T Scalar](v T, x DDouble) DDouble { return From(v).Rem(x) }

func CmpScalar[T Scalar](x DDouble, v T) int { return x.Cmp(From(v)) }
func EqualScalar[T Scalar](x DDouble, v T) bool { return x.Equal(From(v)) }
func LessThanScalar[T Scalar](x DDouble, v T) bool { return x.LessThan(From(v)) }
func LessOrEqualToScalar[T Scalar](x DDouble, v T) bool { return x.LessOrEqualTo(From(v)) }
func GreaterThanScalar[T Scalar](x DDouble, v T) bool { return x.GreaterThan(From(v)) }
func GreaterOrEqualToScalar[T Scalar](x DDouble, v T) bool { return x.GreaterOrEqualTo(From(v)) }
