package ddouble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// defaultDigits is the number of significant digits written by String.
	defaultDigits = 30

	maxFormatDigits = 1000
)

// String returns x with 30 significant digits in the style of %g: trailing
// zeros are trimmed and large or small magnitudes switch to an exponent.
func (x DDouble) String() string {
	return defaultContext.Text(x, 'g', defaultDigits)
}

// Text converts x to a string according to the format fmt and precision
// prec, like strconv.FormatFloat:
//
//	'e'	-d.dddde-dd
//	'E'	-d.ddddE-dd
//	'f'	-ddd.dddd
//	'g'	'e' for large exponents, 'f' otherwise
//	'G'	'E' for large exponents, 'f' otherwise
//
// For 'e', 'E' and 'f', prec is the number of digits after the decimal
// point. For 'g' and 'G' it is the number of significant digits, with
// trailing zeros removed. A negative prec selects 30 significant digits.
//
// Exponents carry no '+' and no padding. Zero is written as "0" or "-0"
// whatever the format.
func (x DDouble) Text(fmt byte, prec int) string {
	return defaultContext.Text(x, fmt, prec)
}

// FormatString formats x using a layout of the form "E<n>" or "e<n>", which
// writes n digits after the decimal point of a d.ddd...E<exp> mantissa. An
// empty layout is the same as String. Any other layout fails with ErrFormat.
func (x DDouble) FormatString(layout string) (string, error) {
	return defaultContext.FormatString(x, layout)
}

func (c *Context) FormatString(x DDouble, layout string) (string, error) {
	if layout == "" {
		return c.Text(x, 'g', defaultDigits), nil
	}
	if len(layout) < 2 || (layout[0] != 'E' && layout[0] != 'e') {
		return "", errors.Wrapf(ErrFormat, "ddouble: unknown layout %q", layout)
	}
	for _, r := range layout[1:] {
		if r < '0' || r > '9' {
			return "", errors.Wrapf(ErrFormat, "ddouble: unknown layout %q", layout)
		}
	}
	n, err := strconv.Atoi(layout[1:])
	if err != nil || n > maxFormatDigits {
		return "", errors.Wrapf(ErrFormat, "ddouble: layout %q precision out of range", layout)
	}
	return c.Text(x, layout[0], n), nil
}

// Text is DDouble.Text using the power tables of c.
func (c *Context) Text(x DDouble, fmt byte, prec int) string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x.IsInf(1):
		return "+Inf"
	case x.IsInf(-1):
		return "-Inf"
	case x.IsZero():
		if x.Signbit() {
			return "-0"
		}
		return "0"
	}
	if prec > maxFormatDigits {
		prec = maxFormatDigits
	}

	var sb strings.Builder
	if x.Signbit() {
		sb.WriteByte('-')
	}

	switch fmt {
	case 'e', 'E':
		if prec < 0 {
			prec = defaultDigits - 1
		}
		_, digits, exp10 := c.Digits(x, prec+1)
		writeExp(&sb, digits, exp10, fmt)

	case 'f':
		if prec < 0 {
			_, _, exp10 := c.Digits(x, defaultDigits)
			prec = defaultDigits - 1 - exp10
			if prec < 0 {
				prec = 0
			}
		}
		digits := c.fixed(x, prec).String()
		if len(digits) <= prec {
			digits = zeros(prec-len(digits)+1) + digits
		}
		sb.WriteString(digits[:len(digits)-prec])
		if prec > 0 {
			sb.WriteByte('.')
			sb.WriteString(digits[len(digits)-prec:])
		}

	case 'g', 'G':
		if prec < 0 {
			prec = defaultDigits
		} else if prec == 0 {
			prec = 1
		}
		_, digits, exp10 := c.Digits(x, prec)
		digits = strings.TrimRight(digits, "0")
		if exp10 < -4 || exp10 >= prec {
			writeExp(&sb, digits, exp10, fmt-'g'+'e')
			break
		}
		if exp10 >= 0 {
			if len(digits) <= exp10 {
				digits += zeros(exp10 + 1 - len(digits))
			}
			sb.WriteString(digits[:exp10+1])
			if frac := digits[exp10+1:]; frac != "" {
				sb.WriteByte('.')
				sb.WriteString(frac)
			}
		} else {
			sb.WriteString("0.")
			sb.WriteString(zeros(-exp10 - 1))
			sb.WriteString(digits)
		}

	default:
		return "%" + string(fmt)
	}

	return sb.String()
}

func writeExp(sb *strings.Builder, digits string, exp10 int, e byte) {
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte(e)
	sb.WriteString(strconv.Itoa(exp10))
}

// Format implements fmt.Formatter for the verbs 'e', 'E', 'f', 'F', 'g',
// 'G', 's' and 'v', honouring width, precision and the '+', ' ', '-' and
// '0' flags.
func (x DDouble) Format(s fmt.State, c rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = -1
	}

	var out string
	switch c {
	case 'e', 'E', 'f', 'g', 'G':
		out = x.Text(byte(c), prec)
	case 'F':
		out = x.Text('f', prec)
	case 's', 'v':
		out = x.Text('g', prec)
	default:
		fmt.Fprintf(s, "%%!%c(ddouble.DDouble=%s)", c, x.String())
		return
	}

	if out[0] != '-' && out[0] != '+' {
		if s.Flag('+') {
			out = "+" + out
		} else if s.Flag(' ') {
			out = " " + out
		}
	}

	width, hasWidth := s.Width()
	if !hasWidth || len(out) >= width {
		fmt.Fprint(s, out)
		return
	}
	pad := width - len(out)
	switch {
	case s.Flag('-'):
		out += strings.Repeat(" ", pad)
	case s.Flag('0') && x.IsFinite():
		sign := ""
		if out[0] == '-' || out[0] == '+' || out[0] == ' ' {
			sign, out = out[:1], out[1:]
		}
		out = sign + zeros(pad) + out
	default:
		out = strings.Repeat(" ", pad) + out
	}
	fmt.Fprint(s, out)
}

func (x DDouble) MarshalText() ([]byte, error) {
	return []byte(x.Text('g', marshalDigits)), nil
}

func (x *DDouble) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x DDouble) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.Text('g', marshalDigits) + `"`), nil
}

func (x *DDouble) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Wrapf(ErrFormat, "ddouble: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// marshalDigits is enough significant digits for any 106-bit significand to
// survive a round trip through text.
const marshalDigits = 35
