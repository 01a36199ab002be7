package ddouble

import (
	"github.com/pkg/errors"
)

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and 1 if x > y.
// Unlike the relational methods, Cmp is a total order: NaN sorts below every
// other value and compares equal to itself.
func (x DDouble) Cmp(y DDouble) int {
	xnan, ynan := x.IsNaN(), y.IsNaN()
	if xnan || ynan {
		if xnan && ynan {
			return 0
		} else if xnan {
			return -1
		}
		return 1
	}

	if x.hi < y.hi {
		return -1
	} else if x.hi > y.hi {
		return 1
	} else if x.lo < y.lo {
		return -1
	} else if x.lo > y.lo {
		return 1
	}
	return 0
}

// Compare is Cmp as a function, for use with slices.SortFunc and friends.
func Compare(x, y DDouble) int { return x.Cmp(y) }

// Equal reports whether both limbs of x and y are equal. NaN is not equal to
// anything, including itself.
func (x DDouble) Equal(y DDouble) bool {
	return x.hi == y.hi && x.lo == y.lo
}

func (x DDouble) GreaterThan(y DDouble) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo > y.lo)
}

func (x DDouble) GreaterOrEqualTo(y DDouble) bool {
	return x.hi > y.hi || (x.hi == y.hi && x.lo >= y.lo)
}

func (x DDouble) LessThan(y DDouble) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo < y.lo)
}

func (x DDouble) LessOrEqualTo(y DDouble) bool {
	return x.hi < y.hi || (x.hi == y.hi && x.lo <= y.lo)
}

// Min returns the smallest of its arguments. A NaN argument never wins: the
// other argument is returned instead. The result is NaN only if every
// argument is NaN.
func Min(x, y DDouble, more ...DDouble) DDouble {
	m := min2(x, y)
	for _, v := range more {
		m = min2(m, v)
	}
	return m
}

// Max returns the largest of its arguments; NaN is treated as in Min.
func Max(x, y DDouble, more ...DDouble) DDouble {
	m := max2(x, y)
	for _, v := range more {
		m = max2(m, v)
	}
	return m
}

func min2(x, y DDouble) DDouble {
	if y.IsNaN() {
		return x
	} else if x.IsNaN() {
		return y
	} else if y.LessThan(x) {
		return y
	}
	return x
}

func max2(x, y DDouble) DDouble {
	if y.IsNaN() {
		return x
	} else if x.IsNaN() {
		return y
	} else if y.GreaterThan(x) {
		return y
	}
	return x
}

// Clamp returns v limited to the closed interval [lower, upper]. NaN v is
// returned as is. Clamp panics with an error wrapping ErrInvalidArgument if
// lower > upper.
func Clamp(v, lower, upper DDouble) DDouble {
	if lower.GreaterThan(upper) {
		panic(errors.Wrapf(ErrInvalidArgument, "ddouble: clamp min %s > max %s", lower, upper))
	}
	if v.LessThan(lower) {
		return lower
	} else if v.GreaterThan(upper) {
		return upper
	}
	return v
}
