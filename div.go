package bignum

import "github.com/calebcase/oops"

// magShl1 shifts a magnitude left one bit in place, growing by a byte if
// the top bit carries out. Only for private scratch buffers.
func magShl1(mag []byte) []byte {
	var carry byte
	for j, d := range mag {
		mag[j] = d<<1 | carry
		carry = d >> 7
	}
	if carry != 0 {
		mag = append(mag, carry)
	}
	return mag
}

// QuoRem returns the quotient q and remainder r for by != 0. If by is
// zero, ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated to zero
//	r = i - by*q
//
// so the remainder always takes the dividend's sign. big.Int.DivMod-style
// Euclidean division is not supported.
//
// The general case is restoring binary long division: both operands are
// treated as non-negative magnitudes, one dividend bit is shifted into a
// running remainder per step, the divisor is subtracted whenever the
// remainder allows it, and the signs are restored at the end.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return Int{}, Int{}, oops.Trace(ErrDivisionByZero)
	}
	qNeg := i.neg != by.neg
	rNeg := i.neg

	a, b := i.magnitude(), by.magnitude()
	switch magCmp(a, b) {
	case -1:
		return Int{mag: []byte{0}}, makeInt(rNeg, append([]byte(nil), a...)), nil
	case 0:
		return makeInt(qNeg, []byte{1}), Int{mag: []byte{0}}, nil
	}

	// The dividend copy doubles as the quotient accumulator: each step
	// shifts its top bit out into the remainder, and the quotient bit is
	// written into the freshly vacated bottom bit.
	div := append([]byte(nil), a...)
	rem := []byte{0}
	for k := len(div) * 8; k > 0; k-- {
		rem = magShl1(rem)
		rem[0] |= div[len(div)-1] >> 7

		var carry byte
		for j, d := range div {
			div[j] = d<<1 | carry
			carry = d >> 7
		}

		if magCmp(rem, b) >= 0 {
			rem = trimMag(magSub(rem, b))
			div[0] |= 1
		}
	}
	return makeInt(qNeg, div), makeInt(rNeg, rem), nil
}

// Quo returns the quotient i/by for by != 0; see QuoRem for details.
func (i Int) Quo(by Int) (Int, error) {
	q, _, err := i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i/by for by != 0; see QuoRem for details.
func (i Int) Rem(by Int) (Int, error) {
	_, r, err := i.QuoRem(by)
	return r, err
}
