package ddouble

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Decimal magnitudes beyond these bounds are certain to overflow to
	// infinity or underflow to zero.
	maxDecimalMagnitude = 330
	minDecimalMagnitude = -400

	// parseBits is the number of significant bits produced by the division
	// step of Parse before the final rounding to 106 bits.
	parseBits = significandBits + 4
)

// Parse reads a decimal number:
//
//	[+-] digits [. digits] [(e|E) [+-] digits]
//	[+-] (NaN | Inf | Infinity)
//
// Either the integer or the fraction digits may be omitted, but not both.
// The special names are matched without regard to case. The result is
// rounded to 106 significant bits. Malformed input fails with ErrFormat.
func Parse(s string) (DDouble, error) {
	return defaultContext.Parse(s)
}

// MustParse is Parse for trusted input. It panics on error.
func MustParse(s string) DDouble {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Context) Parse(s string) (DDouble, error) {
	in := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	switch strings.ToLower(s) {
	case "nan":
		return NaN(), nil
	case "inf", "infinity":
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	}

	var (
		digits   []byte
		fracLen  int
		seenDot  bool
		seenDigs bool
		i        int
	)
scan:
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			seenDigs = true
			if len(digits) > 0 || ch != '0' {
				digits = append(digits, ch)
			}
			if seenDot {
				fracLen++
			}
			continue
		case ch == '.' && !seenDot:
			seenDot = true
			continue
		}
		break scan
	}
	if !seenDigs {
		return Zero, errors.Wrapf(ErrFormat, "ddouble: invalid number %q", in)
	}

	exp10 := 0
	if i < len(s) {
		if s[i] != 'e' && s[i] != 'E' {
			return Zero, errors.Wrapf(ErrFormat, "ddouble: invalid number %q", in)
		}
		es := s[i+1:]
		if len(es) > 0 && (es[0] == '+' || es[0] == '-') {
			if len(es) == 1 {
				return Zero, errors.Wrapf(ErrFormat, "ddouble: invalid exponent in %q", in)
			}
			es = es[1:]
		}
		if es == "" || strings.IndexFunc(es, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return Zero, errors.Wrapf(ErrFormat, "ddouble: invalid exponent in %q", in)
		}
		v, err := strconv.Atoi(s[i+1:])
		if err != nil {
			// Too many digits for an int; the magnitude checks below only need the sign.
			v = 1 << 30
			if s[i+1] == '-' {
				v = -v
			}
		}
		exp10 = v
	}

	// Digits that trail the significant ones only move the exponent.
	trimmed := strings.TrimRight(string(digits), "0")
	exp10 += len(digits) - len(trimmed) - fracLen

	if trimmed == "" {
		if neg {
			return Zero.Neg(), nil
		}
		return Zero, nil
	}

	mant, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return Zero, errors.Wrapf(ErrFormat, "ddouble: invalid number %q", in)
	}
	return c.scale10(neg, mant, exp10), nil
}

// scale10 returns ±mant * 10^exp10 rounded to 106 significant bits. mant must
// be non-negative and is overwritten.
func (c *Context) scale10(neg bool, mant *big.Int, exp10 int) DDouble {
	if mant.Sign() == 0 {
		if neg {
			return Zero.Neg()
		}
		return Zero
	}

	mag := exp10 + len(mant.String())
	if mag > maxDecimalMagnitude {
		if neg {
			return Inf(-1)
		}
		return Inf(1)
	} else if mag < minDecimalMagnitude {
		if neg {
			return Zero.Neg()
		}
		return Zero
	}

	if exp10 >= 0 {
		mant.Mul(mant, c.pow10.Pow(exp10))
		return fromMantissa(neg, 0, mant)
	}

	// mant / 10^k == (mant * 2^sh / 5^k) * 2^-(k+sh), with sh chosen so the
	// quotient carries at least parseBits bits.
	k := -exp10
	den := c.pow5.Pow(k)
	sh := parseBits + den.BitLen() - mant.BitLen()
	if sh < 0 {
		sh = 0
	}
	mant.Lsh(mant, uint(sh))
	mant.Quo(mant, den)
	return fromMantissa(neg, -k-sh, mant)
}
