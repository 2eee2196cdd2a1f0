/*
Package bignum provides an arbitrary-precision signed integer type (Int),
stored as a sign flag plus a little-endian base-256 magnitude.

Int is a value type; all operations return new values.

Simple example:

	a := bignum.FromInt64(200)
	b := bignum.FromInt64(100)
	c := a.Add(b)
	// c == bignum.FromInt64(300)

Int can be created from a variety of sources:

	FromSigned[T Signed](v T) Int
	FromInt(v int) Int
	FromInt8(v int8) Int
	FromInt16(v int16) Int
	FromInt32(v int32) Int
	FromInt64(v int64) Int
	FromUint64(v uint64) Int
	FromBigInt(v *big.Int) Int

The bitwise operations (And, Or, Xor, Not) work byte-wise on the magnitude
and combine the sign flags directly. They are NOT two's complement; callers
expecting C-like signed bitwise behaviour should consult the individual
method documentation before relying on results for negative operands.

There is no textual parsing or formatting. Convert through *big.Int if a
string representation is needed.
*/
package bignum
