package ddouble

import (
	"math"
)

// twoSum computes s = fl(a+b) and the exact rounding error e, such that
// a + b == s + e. The result does not depend on the order of a and b.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// quickTwoSum renormalises hi + lo into a pair where lo is no larger than half
// an ULP of hi. Assumes |hi| >= |lo|. Pairs with a non-finite hi, or a zero
// lo, are returned as they are so that infinities and signed zeros survive.
func quickTwoSum(hi, lo float64) DDouble {
	if hi != hi || math.IsInf(hi, 0) {
		return DDouble{hi: hi}
	}
	if lo == 0 {
		return DDouble{hi: hi, lo: lo}
	}
	s := hi + lo
	if math.IsInf(s, 0) {
		return DDouble{hi: s}
	}
	return DDouble{hi: s, lo: lo - (s - hi)}
}

// twoSumNorm is quickTwoSum without the magnitude assumption; used where
// cancellation in hi may leave lo the larger of the two.
func twoSumNorm(hi, lo float64) DDouble {
	if hi != hi || math.IsInf(hi, 0) {
		return DDouble{hi: hi}
	}
	if lo == 0 {
		return DDouble{hi: hi, lo: lo}
	}
	s, e := twoSum(hi, lo)
	if math.IsInf(s, 0) {
		return DDouble{hi: s}
	}
	return DDouble{hi: s, lo: e}
}

// MultiplyAdd returns v + x*y. The product is folded into v with fused
// multiply-adds, so starting from Zero the result is the exact product of x
// and y.
func MultiplyAdd(v DDouble, x, y float64) DDouble {
	hi := math.FMA(x, y, v.hi)
	lo := v.lo + math.FMA(x, y, v.hi-hi)
	return DDouble{hi: hi, lo: lo}
}

// mulFloat returns x * f for a plain float64 f.
func (x DDouble) mulFloat(f float64) DDouble {
	p := MultiplyAdd(Zero, x.hi, f)
	if math.IsInf(p.hi, 0) || p.hi != p.hi {
		return DDouble{hi: p.hi}
	}
	return quickTwoSum(p.hi, p.lo+float64(x.lo*f))
}
