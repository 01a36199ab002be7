package ddouble

import (
	"math"
	"math/big"
)

// guardDigits is the number of extra decimal digits extracted before the
// final rounding step in Digits.
const guardDigits = 3

// Context owns the power tables used to move between binary and decimal.
// Contexts are independent of one another and safe for concurrent use.
//
// The package-level rendering and parsing functions share a default Context.
type Context struct {
	pow5  *PowCache
	pow10 *PowCache
}

var defaultContext = NewContext()

func NewContext() *Context {
	return &Context{
		pow5:  NewPowCache(5),
		pow10: NewPowCache(10),
	}
}

// Digits returns the leading n significant decimal digits of |x|, rounded
// half up, and the decimal exponent of the first digit, such that
//
//	|x| ~= 0.d1d2...dn * 10^(exp10+1)
//
// digits always has exactly n characters. If rounding carries into an extra
// digit, exp10 is incremented instead. Zero returns n zeros and exp10 == 0.
// x must be finite and n must be at least 1.
func (c *Context) Digits(x DDouble, n int) (neg bool, digits string, exp10 int) {
	if n < 1 {
		n = 1
	}
	neg = x.Signbit()
	sign, e2, mant := x.Decompose()
	if mant == nil {
		panic("ddouble: digits of non-finite value")
	}
	if sign == 0 {
		return neg, zeros(n), 0
	}

	// 2^(top) <= |x| < 2^(top+1), so the first decimal digit sits at
	// floor(top*log10(2)) or one place above it.
	top := e2 + mant.BitLen() - 1
	est := int(math.Floor(float64(top) * math.Log10(2)))
	scale := est - (n + guardDigits) + 1

	// q = floor(mant * 2^e2 / 10^scale)
	num, den := mant, new(big.Int).SetInt64(1)
	if scale >= 0 {
		den.Set(c.pow5.Pow(scale))
	} else {
		num.Mul(num, c.pow5.Pow(-scale))
	}
	if sh := e2 - scale; sh >= 0 {
		num.Lsh(num, uint(sh))
	} else {
		den.Lsh(den, uint(-sh))
	}
	q := num.Quo(num, den)

	drop := len(q.String()) - n
	switch {
	case drop > 0:
		div := c.pow10.Pow(drop)
		r := new(big.Int)
		q.QuoRem(q, div, r)
		if r.Lsh(r, 1).Cmp(div) >= 0 {
			q.Add(q, bigOne)
		}
	case drop < 0:
		q.Mul(q, c.pow10.Pow(-drop))
	}
	exp10 = scale + drop + n - 1

	digits = q.String()
	if len(digits) > n {
		digits = digits[:n]
		exp10++
	}
	return neg, digits, exp10
}

// fixed returns round(|x| * 10^prec), rounding half up, for finite x and
// prec >= 0.
func (c *Context) fixed(x DDouble, prec int) *big.Int {
	_, e2, mant := x.Decompose()
	if mant == nil {
		panic("ddouble: fixed point digits of non-finite value")
	}
	num := mant.Mul(mant, c.pow10.Pow(prec))
	if e2 >= 0 {
		return num.Lsh(num, uint(e2))
	}
	den := new(big.Int).Lsh(bigOne, uint(-e2))
	r := new(big.Int)
	num.QuoRem(num, den, r)
	if r.Lsh(r, 1).Cmp(den) >= 0 {
		num.Add(num, bigOne)
	}
	return num
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
