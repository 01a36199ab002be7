package ddouble

import (
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

const (
	// decimalDigits and decimalMaxScale describe the fixed-point decimal
	// produced by ToDecimal: 28 significant digits and at most 28 digits
	// after the point, with a coefficient that fits in 96 bits.
	decimalDigits    = 28
	decimalMaxScale  = 28
	decimalCoeffBits = 96
)

// ToDecimal converts x to a decimal with at most 28 significant digits and a
// scale between 0 and 28. Trailing zeros are trimmed from the coefficient.
// Digits beyond the 28th place after the point are rounded away half up.
//
// NaN fails with ErrInvalidCast. Infinities, and values whose coefficient
// would need more than 96 bits, fail with ErrOverflow.
func ToDecimal(x DDouble) (*apd.Decimal, error) {
	return defaultContext.ToDecimal(x)
}

// FromDecimal converts d to a DDouble, rounding to 106 significant bits.
// Decimal infinities and NaNs map to their DDouble counterparts.
func FromDecimal(d *apd.Decimal) DDouble {
	return defaultContext.FromDecimal(d)
}

func (c *Context) ToDecimal(x DDouble) (*apd.Decimal, error) {
	if x.IsNaN() {
		return nil, errors.Wrap(ErrInvalidCast, "ddouble: NaN to decimal")
	}
	if x.IsInf(0) {
		return nil, errors.Wrapf(ErrOverflow, "ddouble: %s to decimal", x)
	}
	if x.IsZero() {
		d := apd.New(0, 0)
		d.Negative = x.Signbit()
		return d, nil
	}

	neg, digits, exp10 := c.Digits(x, decimalDigits)
	coeff, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		panic("ddouble: bad digits " + digits)
	}
	exp := exp10 - decimalDigits + 1

	if -exp > decimalMaxScale {
		coeff = c.fixed(x, decimalMaxScale)
		exp = -decimalMaxScale
	} else if exp > 0 {
		coeff.Mul(coeff, c.pow10.Pow(exp))
		exp = 0
	}
	if coeff.BitLen() > decimalCoeffBits {
		return nil, errors.Wrapf(ErrOverflow, "ddouble: %s out of decimal range", x)
	}
	exp += trimDecimalZeros(coeff, exp)

	d := apd.NewWithBigInt(coeff, int32(exp))
	d.Negative = neg
	return d, nil
}

// trimDecimalZeros divides trailing decimal zeros out of coeff while the
// exponent exp stays at or below zero, and returns the number removed.
func trimDecimalZeros(coeff *big.Int, exp int) int {
	if coeff.Sign() == 0 {
		return -exp
	}
	var (
		ten = big.NewInt(10)
		q   = new(big.Int)
		r   = new(big.Int)
		n   int
	)
	for exp+n < 0 {
		q.QuoRem(coeff, ten, r)
		if r.Sign() != 0 {
			break
		}
		coeff.Set(q)
		n++
	}
	return n
}

func (c *Context) FromDecimal(d *apd.Decimal) DDouble {
	switch d.Form {
	case apd.Infinite:
		if d.Negative {
			return Inf(-1)
		}
		return Inf(1)
	case apd.NaN, apd.NaNSignaling:
		return NaN()
	}

	mant := new(big.Int).Set(&d.Coeff)
	neg := d.Negative
	if mant.Sign() < 0 {
		neg = !neg
		mant.Neg(mant)
	}
	return c.scale10(neg, mant, int(d.Exponent))
}
