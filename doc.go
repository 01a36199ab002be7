/*
Package ddouble provides a double-double floating point type (DDouble): the
unevaluated sum of two float64s, carrying about 106 bits of significand, or
a little over 31 decimal digits.

DDouble is a value type; all operations return new values. Arithmetic never
fails: NaN, infinities and signed zeros follow the rules of float64.

Simple example:

	third := ddouble.One.Quo(ddouble.FromInt64(3))
	fmt.Println(third)
	// Output: 0.333333333333333333333333333333

DDouble can be created from a variety of sources:

	New(hi, lo float64) DDouble
	FromBits(sign, exponent int, hiBits, loBits uint64) (DDouble, error)
	FromFloat64(f float64) DDouble
	FromFloat32(f float32) DDouble
	FromInt64(v int64) DDouble
	FromUint64(v uint64) DDouble
	FromInt32(v int32) DDouble
	FromUint32(v uint32) DDouble
	FromBigInt(v *big.Int) DDouble
	FromBigFloat(f *big.Float) DDouble
	FromDecimal(d *apd.Decimal) DDouble
	From[T Scalar](v T) DDouble
	Parse(s string) (DDouble, error)

Mixed arithmetic with plain Go numbers goes through the generic adapters
(AddScalar, ScalarSub, LessThanScalar and friends), which promote the
scalar with From and then use the DDouble method.

Decimal conversion is done with big integers only. The power tables it
needs live in a Context; the package-level functions share a default one.

DDouble supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package ddouble
