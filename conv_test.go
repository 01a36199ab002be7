package ddouble

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func bigs(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("ddouble: big string %q invalid", s))
	}
	return b
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, f := range []float64{
		0, 1, -1, 0.1, math.Pi, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), math.Copysign(0, -1),
	} {
		t.Run(fmt.Sprintf("%g", f), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(math.Float64bits(f), math.Float64bits(FromFloat64(f).AsFloat64()))
		})
	}
	tt := assert.WrapTB(t)
	tt.MustAssert(math.IsNaN(FromFloat64(math.NaN()).AsFloat64()))
	tt.MustEqual(float32(0.1), FromFloat32(0.1).AsFloat32())
}

func TestFromInt64(t *testing.T) {
	for _, v := range []int64{
		0, 1, -1, 1 << 53, 1<<53 + 1, -(1<<53 + 1), 1<<62 + 12345,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	} {
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := FromInt64(v)
			exact, _ := d.AsBigFloat().Int(nil)
			tt.MustEqual(big.NewInt(v).String(), exact.String())

			out, err := d.Int64()
			tt.MustOK(err)
			tt.MustEqual(v, out)
		})
	}
}

func TestFromUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 1<<53 + 1, 1<<63 + 1, math.MaxUint64} {
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := FromUint64(v)
			exact, _ := d.AsBigFloat().Int(nil)
			tt.MustEqual(new(big.Int).SetUint64(v).String(), exact.String())

			out, err := d.Uint64()
			tt.MustOK(err)
			tt.MustEqual(v, out)
		})
	}
}

func TestFromSmallInts(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(FromInt32(math.MinInt32).Equal(i64(math.MinInt32)))
	tt.MustAssert(FromUint32(math.MaxUint32).Equal(i64(math.MaxUint32)))
	tt.MustAssert(FromInt(-42).Equal(i64(-42)))
	tt.MustAssert(FromUint(42).Equal(i64(42)))
}

func TestIntConversions(t *testing.T) {
	tt := assert.WrapTB(t)

	v32, err := dd(2147483647.75, 0).Int32()
	tt.MustOK(err)
	tt.MustEqual(int32(math.MaxInt32), v32)

	v32, err = dd(-2147483648.75, 0).Int32()
	tt.MustOK(err)
	tt.MustEqual(int32(math.MinInt32), v32)

	u32, err := dd(4294967295.5, 0).Uint32()
	tt.MustOK(err)
	tt.MustEqual(uint32(math.MaxUint32), u32)

	// Truncation uses both limbs.
	v64, err := dd(1<<60, -0.5).Int64()
	tt.MustOK(err)
	tt.MustEqual(int64(1<<60-1), v64)

	v64, err = dd(-(1 << 60), 0.5).Int64()
	tt.MustOK(err)
	tt.MustEqual(int64(-(1<<60)+1), v64)

	u64, err := dd(-0.5, 0).Uint64()
	tt.MustOK(err)
	tt.MustEqual(uint64(0), u64)

	iv, err := i64(-123).Int()
	tt.MustOK(err)
	tt.MustEqual(-123, iv)
}

func TestIntConversionErrors(t *testing.T) {
	for idx, tc := range []struct {
		conv func() error
		err  error
	}{
		{func() error { _, err := FromFloat64(1e30).Int64(); return err }, ErrOverflow},
		{func() error { _, err := FromFloat64(-1e30).Int64(); return err }, ErrOverflow},
		{func() error { _, err := NaN().Int(); return err }, ErrInvalidCast},
		{func() error { _, err := NaN().Uint64(); return err }, ErrInvalidCast},
		{func() error { _, err := NaN().BigInt(); return err }, ErrInvalidCast},
		{func() error { _, err := Inf(1).Int64(); return err }, ErrOverflow},
		{func() error { _, err := Inf(-1).BigInt(); return err }, ErrOverflow},
		{func() error { _, err := dd(1<<63, 0).Int64(); return err }, ErrOverflow},
		{func() error { _, err := dd(1<<64, 0).Uint64(); return err }, ErrOverflow},
		{func() error { _, err := i64(-1).Uint64(); return err }, ErrOverflow},
		{func() error { _, err := i64(-1).Uint32(); return err }, ErrOverflow},
		{func() error { _, err := i64(1 << 31).Int32(); return err }, ErrOverflow},
		{func() error { _, err := i64(1 << 32).Uint32(); return err }, ErrOverflow},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			err := tc.conv()
			tt.MustAssert(errors.Is(err, tc.err), "%v", err)
		})
	}
}

func TestBigInt(t *testing.T) {
	for _, tc := range []struct {
		in  *big.Int
		out *big.Int
	}{
		{bigs("0"), bigs("0")},
		{bigs("-1"), bigs("-1")},
		{bigs("0x3ffffffffffffffffffffffffff"), bigs("0x3ffffffffffffffffffffffffff")},
		{bigs("-0x3ffffffffffffffffffffffffff"), bigs("-0x3ffffffffffffffffffffffffff")},

		// 107 bits: the last bit is rounded half up.
		{bigs("0x400000000000000000000000001"), bigs("0x400000000000000000000000002")},
		{bigs("0x400000000000000000000000003"), bigs("0x400000000000000000000000004")},
		{bigs("-0x400000000000000000000000001"), bigs("-0x400000000000000000000000002")},

		// 108 bits: 0b01 is dropped, 0b10 rounds up.
		{bigs("0x800000000000000000000000001"), bigs("0x800000000000000000000000000")},
		{bigs("0x800000000000000000000000002"), bigs("0x800000000000000000000000004")},
	} {
		t.Run(fmt.Sprintf("%s", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := FromBigInt(tc.in).BigInt()
			tt.MustOK(err)
			tt.MustEqual(tc.out.String(), out.String())
		})
	}
}

func TestFromBigIntOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	huge := new(big.Int).Lsh(bigOne, 1100)
	tt.MustAssert(FromBigInt(huge).IsInf(1))
	tt.MustAssert(FromBigInt(huge.Neg(huge)).IsInf(-1))
}

func TestFromBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	third := new(big.Float).SetPrec(300).Quo(big.NewFloat(1), big.NewFloat(3))
	tt.MustAssert(FromBigFloat(third).Equal(MustParse("0.3333333333333333333333333333333333333333")))

	tt.MustAssert(FromBigFloat(big.NewFloat(0.1)).Equal(FromFloat64(0.1)))
	tt.MustAssert(FromBigFloat(new(big.Float).SetInf(true)).IsInf(-1))
	tt.MustAssert(FromBigFloat(new(big.Float).Neg(new(big.Float))).Signbit())

	source := &rando{rng: globalRNG}
	for i := 0; i < 1000; i++ {
		v := source.DDouble(-900, 900)
		tt.MustAssert(FromBigFloat(v.AsBigFloat()).Equal(v), "%v", v)
	}
}

func TestAsBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	f := dd(1, 0x1p-105).AsBigFloat()
	want := new(big.Float).SetPrec(200).Add(big.NewFloat(1), new(big.Float).SetMantExp(big.NewFloat(1), -105))
	tt.MustEqual(uint(106), f.MinPrec())
	tt.MustEqual(0, f.Cmp(want))

	tt.MustAssert(NaN().AsBigFloat() == nil)
	tt.MustAssert(Inf(-1).AsBigFloat().IsInf())
	tt.MustAssert(Zero.Neg().AsBigFloat().Signbit())
}
