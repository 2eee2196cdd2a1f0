package bignum

// The bitwise operations work byte-wise on the magnitudes, conceptually
// padding the shorter operand with zero bytes. The sign flags are combined
// directly rather than emulating two's complement: a negative operand
// contributes its magnitude's bit pattern, not its two's complement one.

// And returns the byte-wise AND of the magnitudes. The sign flags are
// AND-ed too, so the result is negative when either operand is negative.
func (i Int) And(n Int) Int {
	a, b := i.magnitude(), n.magnitude()
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	for j := range a {
		out[j] = a[j] & b[j]
	}
	return makeInt(i.neg || n.neg, out)
}

// Or returns the byte-wise OR of the magnitudes. The sign flags are OR-ed
// too, so the result is negative only when both operands are negative.
func (i Int) Or(n Int) Int {
	a, b := i.magnitude(), n.magnitude()
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]byte, len(b))
	for j := range a {
		out[j] = a[j] | b[j]
	}
	copy(out[len(a):], b[len(a):])
	return makeInt(i.neg && n.neg, out)
}

// Xor returns the byte-wise XOR of the magnitudes. The result is always
// non-negative.
func (i Int) Xor(n Int) Int {
	a, b := i.magnitude(), n.magnitude()
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]byte, len(b))
	for j := range a {
		out[j] = a[j] ^ b[j]
	}
	copy(out[len(a):], b[len(a):])
	return makeInt(false, out)
}

// Not inverts every byte of the magnitude and flips the sign.
func (i Int) Not() Int {
	mag := i.magnitude()
	out := make([]byte, len(mag))
	for j, d := range mag {
		out[j] = ^d
	}
	return makeInt(!i.neg, out)
}
