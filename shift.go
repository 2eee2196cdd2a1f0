package bignum

import "github.com/calebcase/oops"

// Lsh shifts i left by the given number of bits, preserving the sign.
// ErrShiftCount is returned when by is negative.
func (i Int) Lsh(by int) (Int, error) {
	if by < 0 {
		return Int{}, oops.Trace(ErrShiftCount)
	}
	mag := i.magnitude()
	whole, bits := by/8, uint(by%8)

	out := make([]byte, whole, whole+len(mag)+1)
	if bits == 0 {
		out = append(out, mag...)
	} else {
		var carry byte
		for _, d := range mag {
			out = append(out, d<<bits|carry)
			carry = d >> (8 - bits)
		}
		if carry != 0 {
			out = append(out, carry)
		}
	}
	return makeInt(i.neg, out), nil
}

// Rsh shifts i right by the given number of bits, preserving the sign.
// Bits shifted out are lost, so the magnitude truncates toward zero.
// ErrShiftCount is returned when by is negative.
func (i Int) Rsh(by int) (Int, error) {
	if by < 0 {
		return Int{}, oops.Trace(ErrShiftCount)
	}
	mag := i.magnitude()
	whole, bits := by/8, uint(by%8)
	if whole >= len(mag) {
		return Int{mag: []byte{0}}, nil
	}

	rest := mag[whole:]
	out := make([]byte, len(rest))
	if bits == 0 {
		copy(out, rest)
	} else {
		var carry byte
		for j := len(rest) - 1; j >= 0; j-- {
			out[j] = rest[j]>>bits | carry
			carry = rest[j] << (8 - bits)
		}
	}
	return makeInt(i.neg, out), nil
}

// RshLogical would shift i right treating the value as an unsigned bit
// pattern of its current byte length. It is not implemented: every call
// returns ErrUnsupported (ErrShiftCount when by is negative).
func (i Int) RshLogical(by int) (Int, error) {
	if by < 0 {
		return Int{}, oops.Trace(ErrShiftCount)
	}
	return Int{}, oops.Trace(ErrUnsupported)
}
