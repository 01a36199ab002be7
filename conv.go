package ddouble

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// significandBits is the width of the significand carried by a normalised
// DDouble: 53 bits in each limb.
const significandBits = 2 * loMantBits

var (
	bigOne = big.NewInt(1)

	minBigInt32  = big.NewInt(math.MinInt32)
	maxBigInt32  = big.NewInt(math.MaxInt32)
	maxBigUint32 = new(big.Int).SetUint64(math.MaxUint32)
	minBigInt64  = big.NewInt(math.MinInt64)
	maxBigInt64  = big.NewInt(math.MaxInt64)
	maxBigUint64 = new(big.Int).SetUint64(math.MaxUint64)
	bigZero      = new(big.Int)
)

func FromFloat64(f float64) DDouble { return DDouble{hi: f} }
func FromFloat32(f float32) DDouble { return DDouble{hi: float64(f)} }
func FromInt32(v int32) DDouble { return DDouble{hi: float64(v)} }
func FromUint32(v uint32) DDouble { return DDouble{hi: float64(v)} }
func FromInt(v int) DDouble { return FromInt64(int64(v)) }
func FromUint(v uint) DDouble { return FromUint64(uint64(v)) }

// FromInt64 creates a DDouble that represents v exactly.
func FromInt64(v int64) DDouble {
	if v < 0 {
		return FromUint64(-uint64(v)).Neg()
	}
	return FromUint64(uint64(v))
}

// FromUint64 creates a DDouble that represents v exactly. Values wider than 53
// bits are split into their upper 53 bits and the remainder.
func FromUint64(v uint64) DDouble {
	n := bits.Len64(v)
	if n <= loMantBits {
		return DDouble{hi: float64(v)}
	}
	mask := uint64(1)<<uint(n-loMantBits) - 1
	return quickTwoSum(float64(v&^mask), float64(v&mask))
}

// FromBigInt creates a DDouble from the leading 106 significant bits of v,
// rounding half up on the first discarded bit. Values too large for a
// float64 become infinite.
func FromBigInt(v *big.Int) DDouble {
	return fromMantissa(v.Sign() < 0, 0, new(big.Int).Abs(v))
}

// FromBigFloat creates a DDouble from the leading 106 significant bits of f.
func FromBigFloat(f *big.Float) DDouble {
	if f.IsInf() {
		if f.Signbit() {
			return Inf(-1)
		}
		return Inf(1)
	}
	if f.Sign() == 0 {
		if f.Signbit() {
			return Zero.Neg()
		}
		return Zero
	}
	exp := f.MantExp(nil)
	prec := int(f.MinPrec())
	scaled := new(big.Float).SetMantExp(f, prec-exp)
	mant, _ := scaled.Int(nil)
	return fromMantissa(mant.Sign() < 0, exp-prec, mant.Abs(mant))
}

// fromMantissa returns ±mant * 2^exp rounded to 106 significant bits. mant
// must be non-negative and is overwritten.
func fromMantissa(neg bool, exp int, mant *big.Int) DDouble {
	if mant.Sign() == 0 {
		if neg {
			return Zero.Neg()
		}
		return Zero
	}

	shift := mant.BitLen() - significandBits
	if shift > 0 {
		round := mant.Bit(shift - 1)
		mant.Rsh(mant, uint(shift))
		if round != 0 {
			mant.Add(mant, bigOne)
		}
	} else if shift < 0 {
		mant.Lsh(mant, uint(-shift))
	}
	exp += shift

	lo := mant.Uint64() & (loBitsLimit - 1)
	hi := new(big.Int).Rsh(mant, loMantBits).Uint64()

	out := quickTwoSum(
		math.Ldexp(float64(hi), exp+loMantBits),
		math.Ldexp(float64(lo), exp),
	)
	if neg {
		out = out.Neg()
	}
	return out
}

// Decompose breaks x into sign, exp and mant such that x == sign * mant * 2^exp
// exactly, with mant odd (or zero, with sign 0). For NaN and infinities
// mant is nil.
func (x DDouble) Decompose() (sign int, exp int, mant *big.Int) {
	if !x.IsFinite() {
		return 0, 0, nil
	}
	if x.hi == 0 {
		return 0, 0, new(big.Int)
	}

	mh, eh := splitFloat(x.hi)
	mant, exp = big.NewInt(mh), eh
	if x.lo != 0 {
		ml, el := splitFloat(x.lo)
		lo := big.NewInt(ml)
		if el < eh {
			mant.Lsh(mant, uint(eh-el))
			exp = el
		} else {
			lo.Lsh(lo, uint(el-eh))
		}
		mant.Add(mant, lo)
	}

	sign = mant.Sign()
	mant.Abs(mant)
	if tz := mant.TrailingZeroBits(); tz > 0 {
		mant.Rsh(mant, tz)
		exp += int(tz)
	}
	return sign, exp, mant
}

// splitFloat returns m and e such that f == m * 2^e, for finite non-zero f.
func splitFloat(f float64) (m int64, e int) {
	frac, exp := math.Frexp(f)
	return int64(math.Ldexp(frac, loMantBits)), exp - loMantBits
}

// AsFloat64 returns the high limb of x, which is x rounded to a float64.
func (x DDouble) AsFloat64() float64 { return x.hi }

// AsFloat32 returns x rounded to a float32.
func (x DDouble) AsFloat32() float32 { return float32(x.hi) }

// AsBigFloat returns x exactly as a big.Float. NaN has no big.Float
// representation and returns nil.
func (x DDouble) AsBigFloat() *big.Float {
	if x.IsNaN() {
		return nil
	}
	if x.IsInf(0) {
		return new(big.Float).SetInf(x.hi < 0)
	}
	_, exp, mant := x.Decompose()
	prec := uint(mant.BitLen())
	if prec == 0 {
		prec = 1
	}
	f := new(big.Float).SetPrec(prec).SetInt(mant)
	f.SetMantExp(f, exp)
	if x.Signbit() {
		f.Neg(f)
	}
	return f
}

// BigInt returns x truncated towards zero as a big.Int. The full 106-bit
// significand takes part, so no precision is lost to the float64 limbs.
// NaN fails with ErrInvalidCast; infinities fail with ErrOverflow.
func (x DDouble) BigInt() (*big.Int, error) {
	if x.IsNaN() {
		return nil, errors.Wrap(ErrInvalidCast, "ddouble: NaN to integer")
	}
	if x.IsInf(0) {
		return nil, errors.Wrapf(ErrOverflow, "ddouble: %s to integer", x)
	}

	sign, exp, mant := x.Trunc().Decompose()
	if exp > 0 {
		mant.Lsh(mant, uint(exp))
	} else if exp < 0 {
		mant.Rsh(mant, uint(-exp))
	}
	if sign < 0 {
		mant.Neg(mant)
	}
	return mant, nil
}

func (x DDouble) integer(lower, upper *big.Int, kind string) (*big.Int, error) {
	b, err := x.BigInt()
	if err != nil {
		return nil, errors.Wrapf(err, "ddouble: conversion to %s", kind)
	}
	if b.Cmp(lower) < 0 || b.Cmp(upper) > 0 {
		return nil, errors.Wrapf(ErrOverflow, "ddouble: %s out of %s range", x, kind)
	}
	return b, nil
}

// Int64 returns x truncated towards zero. NaN fails with ErrInvalidCast;
// values outside the int64 range fail with ErrOverflow.
func (x DDouble) Int64() (int64, error) {
	b, err := x.integer(minBigInt64, maxBigInt64, "int64")
	if err != nil {
		return 0, err
	}
	return b.Int64(), nil
}

// Uint64 returns x truncated towards zero. NaN fails with ErrInvalidCast;
// values outside the uint64 range fail with ErrOverflow.
func (x DDouble) Uint64() (uint64, error) {
	b, err := x.integer(bigZero, maxBigUint64, "uint64")
	if err != nil {
		return 0, err
	}
	return b.Uint64(), nil
}

func (x DDouble) Int32() (int32, error) {
	b, err := x.integer(minBigInt32, maxBigInt32, "int32")
	if err != nil {
		return 0, err
	}
	return int32(b.Int64()), nil
}

func (x DDouble) Uint32() (uint32, error) {
	b, err := x.integer(bigZero, maxBigUint32, "uint32")
	if err != nil {
		return 0, err
	}
	return uint32(b.Uint64()), nil
}

// Int returns x truncated towards zero, checked against the range of the
// platform's int.
func (x DDouble) Int() (int, error) {
	if strconv.IntSize == 32 {
		v, err := x.Int32()
		return int(v), err
	}
	v, err := x.Int64()
	return int(v), err
}
