package bignum

import (
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Int is an arbitrary-precision signed integer.
//
// The zero value of Int is a valid representation of zero. Every operation
// returns a freshly allocated value; an Int is never mutated after it is
// visible to a caller, so Ints may be freely copied and shared between
// goroutines.
type Int struct {
	neg bool   // true only for strictly negative values
	mag []byte // base-256 digits, least significant first, normalized
}

// magZero is the canonical magnitude of zero. It is shared, never written.
var magZero = []byte{0}

// magnitude returns the canonical magnitude of i, substituting the
// canonical zero for the unmaterialized zero value.
func (i Int) magnitude() []byte {
	if len(i.mag) == 0 {
		return magZero
	}
	return i.mag
}

// trimMag strips most-significant zero bytes down to the canonical form:
// no redundant leading zero, with zero itself kept as a single zero byte.
func trimMag(mag []byte) []byte {
	n := len(mag)
	for n > 1 && mag[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []byte{0}
	}
	return mag[:n]
}

// makeInt builds a normalized Int from a sign and a freshly allocated
// magnitude. Zero always comes out non-negative.
func makeInt(neg bool, mag []byte) Int {
	mag = trimMag(mag)
	if len(mag) == 1 && mag[0] == 0 {
		return Int{mag: mag}
	}
	return Int{neg: neg, mag: mag}
}

func magIsOne(mag []byte) bool {
	return len(mag) == 1 && mag[0] == 1
}

// Signed is the constraint satisfied by the fixed-width signed integer
// types Int can be built from.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// FromSigned creates an Int from any fixed-width signed integer. The value
// is widened to int64 before its absolute value is taken, so the most
// negative value of every width converts exactly.
func FromSigned[T Signed](v T) Int {
	w := int64(v)
	if w == 0 {
		return Int{mag: []byte{0}}
	}
	neg := w < 0
	var u uint64
	if neg {
		// -(w+1)+1 avoids overflow when w is math.MinInt64.
		u = uint64(-(w+1)) + 1
	} else {
		u = uint64(w)
	}
	mag := make([]byte, 0, 8)
	for ; u != 0; u >>= 8 {
		mag = append(mag, byte(u))
	}
	return Int{neg: neg, mag: mag}
}

func FromInt(v int) Int     { return FromSigned(v) }
func FromInt8(v int8) Int   { return FromSigned(v) }
func FromInt16(v int16) Int { return FromSigned(v) }
func FromInt32(v int32) Int { return FromSigned(v) }
func FromInt64(v int64) Int { return FromSigned(v) }

// FromUint64 creates an Int from a uint64.
func FromUint64(v uint64) Int {
	mag := make([]byte, 0, 8)
	for ; v != 0; v >>= 8 {
		mag = append(mag, byte(v))
	}
	if len(mag) == 0 {
		mag = append(mag, 0)
	}
	return Int{mag: mag}
}

// FromBigInt creates an Int with the same value as v.
func FromBigInt(v *big.Int) Int {
	bs := v.Bytes() // big-endian, already free of leading zeros
	if len(bs) == 0 {
		return Int{mag: []byte{0}}
	}
	mag := make([]byte, len(bs))
	for j, d := range bs {
		mag[len(bs)-1-j] = d
	}
	return Int{neg: v.Sign() < 0, mag: mag}
}

// IntoBigInt copies the value of i into b, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	mag := i.magnitude()
	bs := make([]byte, len(mag))
	for j, d := range mag {
		bs[len(mag)-1-j] = d
	}
	b.SetBytes(bs)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies the value of i into it.
func (i Int) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

// Int64 converts i to an int64. ErrRange is returned when the value does
// not fit; math.MinInt64 itself converts exactly.
func (i Int) Int64() (int64, error) {
	mag := i.magnitude()
	if len(mag) > 8 {
		return 0, oops.Trace(ErrRange)
	}
	var u uint64
	for j := len(mag) - 1; j >= 0; j-- {
		u = u<<8 | uint64(mag[j])
	}
	if i.neg {
		if u > 1<<63 {
			return 0, oops.Trace(ErrRange)
		}
		return -int64(u-1) - 1, nil
	}
	if u > math.MaxInt64 {
		return 0, oops.Trace(ErrRange)
	}
	return int64(u), nil
}

func (i Int) IsZero() bool {
	for _, d := range i.mag {
		if d != 0 {
			return false
		}
	}
	return true
}

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	}
	if i.neg {
		return -1
	}
	return 1
}

func (i Int) Neg() Int {
	if i.IsZero() {
		return Int{mag: []byte{0}}
	}
	return Int{neg: !i.neg, mag: append([]byte(nil), i.magnitude()...)}
}

func (i Int) Abs() Int {
	return Int{mag: append([]byte(nil), i.magnitude()...)}
}
