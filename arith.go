package ddouble

import (
	"math"
)

var half = DDouble{hi: 0.5}

// Add returns x + y. If either operand is infinite the low limbs are dropped
// and the result is the float64 sum of the high limbs.
func (x DDouble) Add(y DDouble) DDouble {
	if math.IsInf(x.hi, 0) || math.IsInf(y.hi, 0) {
		return DDouble{hi: x.hi + y.hi}
	}
	s, e := twoSum(x.hi, y.hi)
	if s != s || math.IsInf(s, 0) {
		return DDouble{hi: s}
	}
	return twoSumNorm(s, e+(x.lo+y.lo))
}

// Sub returns x - y, defined as x + (-y).
func (x DDouble) Sub(y DDouble) DDouble {
	return x.Add(y.Neg())
}

// Mul returns x * y. The partial products are accumulated in order of
// significance: hi*hi exactly via MultiplyAdd, then the two cross terms, then
// lo*lo. The cross terms are summed together first so that x*y == y*x
// holds bit for bit.
func (x DDouble) Mul(y DDouble) DDouble {
	if math.IsInf(x.hi, 0) || math.IsInf(y.hi, 0) || x.hi == 0 || y.hi == 0 {
		return DDouble{hi: x.hi * y.hi}
	}
	p := MultiplyAdd(Zero, x.hi, y.hi)
	if p.hi != p.hi || math.IsInf(p.hi, 0) {
		return DDouble{hi: p.hi}
	}
	// Products are converted explicitly so they are never fused into FMAs.
	lo := p.lo + (float64(x.hi*y.lo) + float64(x.lo*y.hi)) + float64(x.lo*y.lo)
	return quickTwoSum(p.hi, lo)
}

// Quo returns x / y using two rounds of long division on the high limb.
// Infinite operands, a zero dividend or a zero divisor fall back to float64
// division of the high limbs, so 1/0 is +Inf and 0/0 is NaN.
func (x DDouble) Quo(y DDouble) DDouble {
	if !x.IsFinite() || !y.IsFinite() || x.hi == 0 || y.hi == 0 {
		return DDouble{hi: x.hi / y.hi}
	}

	hi := x.hi / y.hi
	if math.IsInf(hi, 0) {
		return DDouble{hi: hi}
	}
	r := x.Sub(y.mulFloat(hi))
	lo := r.hi / y.hi
	r = r.Sub(y.mulFloat(lo))
	c := r.hi / y.hi

	return quickTwoSum(hi, lo).Add(DDouble{hi: c})
}

// Rem returns the remainder of x / y, truncated towards zero like Go's %
// and math.Mod. The result has the sign of x, or is zero.
//
// Rem(x, ±Inf) is x. Rem(±Inf, y), Rem(NaN, y), Rem(x, NaN) and Rem(x, 0)
// are NaN.
func (x DDouble) Rem(y DDouble) DDouble {
	_, r := x.QuoRem(y)
	return r
}

// QuoRem returns the truncated quotient q and remainder r of x / y, such that
// r == x - q*y to within the precision of a DDouble. See Rem for the
// treatment of special values.
//
// If the quotient is off by one because x/y rounded across an integer, r
// comes out with the wrong sign; it is corrected by adding sign(x)*|y|. If
// that correction lands exactly on y, r is forced to zero.
func (x DDouble) QuoRem(y DDouble) (q, r DDouble) {
	if !x.IsFinite() || y.IsNaN() || y.IsZero() {
		return DDouble{hi: math.Trunc(x.hi / y.hi)}, DDouble{hi: math.Mod(x.hi, y.hi)}
	}
	if y.IsInf(0) {
		return DDouble{hi: math.Trunc(x.hi / y.hi)}, x
	}

	q = x.Quo(y).Trunc()
	r = x.Sub(q.Mul(y))

	if r.hi != 0 && math.Signbit(r.hi) != math.Signbit(x.hi) {
		if x.hi < 0 {
			r = r.Sub(y.Abs())
		} else {
			r = r.Add(y.Abs())
		}
		step := DDouble{hi: float64(x.Sign() * y.Sign())}
		q = q.Sub(step)

		if r.Equal(y) {
			return q.Add(step), DDouble{hi: math.Copysign(0, x.hi)}
		}
	}

	if r.IsZero() {
		r = DDouble{hi: math.Copysign(0, x.hi)}
	}
	return q, r
}

// Sqrt returns the square root of x, refining the float64 square root of the
// high limb with one Newton step. Sqrt(±0) is ±0, Sqrt(+Inf) is +Inf and
// negative or NaN x gives NaN.
func (x DDouble) Sqrt() DDouble {
	if x.hi == 0 {
		return x
	}
	if x.hi < 0 || !x.IsFinite() {
		return DDouble{hi: math.Sqrt(x.hi)}
	}
	s := math.Sqrt(x.hi)
	r := x.Sub(MultiplyAdd(Zero, s, s))
	return quickTwoSum(s, r.hi/(2*s))
}

// Floor returns the greatest integer value less than or equal to x.
func (x DDouble) Floor() DDouble {
	fh := math.Floor(x.hi)
	if fh != x.hi {
		return DDouble{hi: fh}
	}
	return quickTwoSum(fh, math.Floor(x.lo))
}

// Ceil returns the least integer value greater than or equal to x.
func (x DDouble) Ceil() DDouble {
	ch := math.Ceil(x.hi)
	if ch != x.hi {
		return DDouble{hi: ch}
	}
	return quickTwoSum(ch, math.Ceil(x.lo))
}

// Trunc returns the integer value of x, rounded towards zero.
func (x DDouble) Trunc() DDouble {
	if math.Signbit(x.hi) {
		return x.Ceil()
	}
	return x.Floor()
}

// Round returns the nearest integer to x, rounding half away from zero.
func (x DDouble) Round() DDouble {
	if !x.IsFinite() {
		return x
	}
	if math.Signbit(x.hi) {
		return x.Neg().Add(half).Floor().Neg()
	}
	return x.Add(half).Floor()
}
