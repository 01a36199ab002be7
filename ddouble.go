package ddouble

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// DDouble is a double-double floating point value: the unevaluated sum of two
// float64s, hi + lo, carrying roughly 106 bits of significand (about 32
// decimal digits).
//
// hi carries the leading significand; lo is a correction term no larger than
// about half an ULP of hi for every value produced by this package. NaN is
// encoded as hi = NaN, infinities as hi = ±Inf, and zero as hi = ±0, lo = ±0.
//
// DDouble is a value type; all operations return new values. The zero value
// is +0.
type DDouble struct {
	hi, lo float64
}

var (
	Zero = DDouble{}
	One  = DDouble{hi: 1}

	// Epsilon is the relative precision of a DDouble, 2^-104.
	Epsilon = DDouble{hi: 0x1p-104}

	Pi  = DDouble{hi: 3.141592653589793116e+00, lo: 1.224646799147353207e-16}
	E   = DDouble{hi: 2.718281828459045091e+00, lo: 1.445646891729250158e-16}
	Ln2 = DDouble{hi: 6.931471805599452862e-01, lo: 2.319046813846299558e-17}
)

const (
	mantBits    = 52
	loMantBits  = 53
	maxExponent = 1023
	minExponent = -1022

	hiBitsLimit = 1 << mantBits
	loBitsLimit = 1 << loMantBits
)

// New creates a DDouble from its two limbs as-is. No normalisation is
// performed; the caller is responsible for keeping |lo| within about one ULP
// of hi.
func New(hi, lo float64) DDouble { return DDouble{hi: hi, lo: lo} }

// NaN returns a DDouble "not-a-number" value.
func NaN() DDouble { return DDouble{hi: math.NaN()} }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) DDouble { return DDouble{hi: math.Inf(sign)} }

// FromBits builds a value from a sign, a binary exponent and a 105-bit
// fraction split into its upper 52 bits (hiBits) and lower 53 bits (loBits):
//
//	sign * (2^52 + hiBits) * 2^(exponent-52) + sign * loBits * 2^(exponent-105)
//
// sign must be -1, 0 or 1. A zero sign requires every other field to be zero.
func FromBits(sign int, exponent int, hiBits, loBits uint64) (DDouble, error) {
	if sign < -1 || sign > 1 {
		return Zero, errors.Wrapf(ErrInvalidArgument, "ddouble: sign %d not in [-1, 1]", sign)
	}
	if sign == 0 {
		if exponent != 0 || hiBits != 0 || loBits != 0 {
			return Zero, errors.Wrapf(ErrInvalidArgument,
				"ddouble: zero sign with exponent %d, bits (%#x, %#x)", exponent, hiBits, loBits)
		}
		return Zero, nil
	}
	if exponent < minExponent || exponent > maxExponent {
		return Zero, errors.Wrapf(ErrInvalidArgument, "ddouble: exponent %d out of range", exponent)
	}
	if hiBits >= hiBitsLimit || loBits >= loBitsLimit {
		return Zero, errors.Wrapf(ErrInvalidArgument, "ddouble: fraction bits (%#x, %#x) out of range", hiBits, loBits)
	}

	hi := math.Ldexp(float64(hiBitsLimit|hiBits), exponent-mantBits)
	lo := math.Ldexp(float64(loBits), exponent-mantBits-loMantBits)
	if sign < 0 {
		hi, lo = -hi, -lo
	}
	return quickTwoSum(hi, lo), nil
}

// Bits is the complement to FromBits. The significand is rounded to 106 bits
// (half up) if the limbs span more than that. ok is false for NaN, infinities
// and values whose exponent falls outside the range FromBits accepts.
func (x DDouble) Bits() (sign int, exponent int, hiBits, loBits uint64, ok bool) {
	if !x.IsFinite() {
		return 0, 0, 0, 0, false
	}
	sign, exp, mant := x.Decompose()
	if sign == 0 {
		return 0, 0, 0, 0, true
	}

	n := mant.BitLen()
	shift := n - (mantBits + loMantBits + 1)
	exp += shift
	if shift > 0 {
		round := mant.Bit(shift - 1)
		mant.Rsh(mant, uint(shift))
		if round != 0 {
			mant.Add(mant, bigOne)
			if mant.BitLen() > mantBits+loMantBits+1 {
				mant.Rsh(mant, 1)
				exp++
			}
		}
	} else if shift < 0 {
		mant.Lsh(mant, uint(-shift))
	}

	exponent = exp + mantBits + loMantBits
	if exponent < minExponent || exponent > maxExponent {
		return 0, 0, 0, 0, false
	}

	loBits = mant.Uint64() & (loBitsLimit - 1)
	mant.Rsh(mant, loMantBits)
	hiBits = mant.Uint64() & (hiBitsLimit - 1)
	return sign, exponent, hiBits, loBits, true
}

// Raw returns access to the DDouble as its pair of limbs. See New() for the
// counterpart.
func (x DDouble) Raw() (hi, lo float64) { return x.hi, x.lo }

func (x DDouble) IsNaN() bool { return x.hi != x.hi }

// IsInf reports whether x is an infinity, according to sign. If sign > 0,
// IsInf reports whether x is positive infinity. If sign < 0, IsInf reports
// whether x is negative infinity. If sign == 0, IsInf reports whether x is
// either infinity.
func (x DDouble) IsInf(sign int) bool { return math.IsInf(x.hi, sign) }

func (x DDouble) IsFinite() bool { return !math.IsInf(x.hi, 0) && x.hi == x.hi }

// IsZero reports whether x is +0 or -0.
func (x DDouble) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// IsInteger reports whether x is finite and has no fractional part.
func (x DDouble) IsInteger() bool {
	return x.IsFinite() && x.Floor().Equal(x)
}

// Signbit reports whether x is negative or negative zero.
func (x DDouble) Signbit() bool { return math.Signbit(x.hi) }

// Sign returns -1 if x < 0, 0 if x is ±0 or NaN, and 1 if x > 0.
func (x DDouble) Sign() int {
	if x.hi > 0 {
		return 1
	} else if x.hi < 0 {
		return -1
	}
	return 0
}

func (x DDouble) Neg() DDouble { return DDouble{hi: -x.hi, lo: -x.lo} }

func (x DDouble) Abs() DDouble {
	if math.Signbit(x.hi) {
		return x.Neg()
	}
	return x
}

// Ldexp returns x * 2^exp. Both limbs are scaled, so the result is exact
// unless it overflows or the low limb underflows.
func (x DDouble) Ldexp(exp int) DDouble {
	return DDouble{hi: math.Ldexp(x.hi, exp), lo: math.Ldexp(x.lo, exp)}
}

// BitIncrement moves the low limb of x one ULP towards +Inf. If the low limb
// is zero, the step is the 106th significant bit of hi. NaN and infinities
// are returned unchanged.
func (x DDouble) BitIncrement() DDouble {
	if !x.IsFinite() {
		return x
	}
	return quickTwoSum(x.hi, x.lo+x.lowStep(1))
}

// BitDecrement moves the low limb of x one ULP towards -Inf; see BitIncrement.
func (x DDouble) BitDecrement() DDouble {
	if !x.IsFinite() {
		return x
	}
	return quickTwoSum(x.hi, x.lo+x.lowStep(-1))
}

func (x DDouble) lowStep(dir float64) float64 {
	if x.lo != 0 {
		return math.Nextafter(x.lo, math.Inf(int(dir))) - x.lo
	}
	step := math.Ldexp(ulp(x.hi), -loMantBits)
	if step == 0 {
		step = math.SmallestNonzeroFloat64
	}
	return dir * step
}

// ulp returns the distance between |f| and the next float64 away from zero,
// for finite f.
func ulp(f float64) float64 {
	if f == 0 {
		return math.SmallestNonzeroFloat64
	}
	_, exp := math.Frexp(f)
	u := math.Ldexp(1, exp-loMantBits)
	if u == 0 {
		return math.SmallestNonzeroFloat64
	}
	return u
}

// Hash returns a hash of x consistent with Equal: the XOR of the hashes of
// the two limbs. Both zeros hash alike, as do all NaNs.
func (x DDouble) Hash() uint64 {
	return hashLimb(x.hi) ^ hashLimb(x.lo)
}

func hashLimb(f float64) uint64 {
	var buf [8]byte
	var bits uint64
	if f != f {
		bits = 0x7FF8000000000001
	} else if f != 0 {
		bits = math.Float64bits(f)
	}
	binary.LittleEndian.PutUint64(buf[:], bits)
	return xxhash.Sum64(buf[:])
}
