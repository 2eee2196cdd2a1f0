package bignum

// Mul returns the product of two Ints using schoolbook long
// multiplication: one partial product per byte of i, accumulated with Add.
// The result is negative exactly when the operand signs differ.
func (i Int) Mul(n Int) Int {
	if i.IsZero() || n.IsZero() {
		return Int{mag: []byte{0}}
	}
	neg := i.neg != n.neg
	a, b := i.magnitude(), n.magnitude()
	if magIsOne(a) {
		return makeInt(neg, append([]byte(nil), b...))
	}
	if magIsOne(b) {
		return makeInt(neg, append([]byte(nil), a...))
	}

	acc := []byte{0}
	for idx, d := range a {
		if d == 0 {
			continue
		}
		// Partial product of digit idx, pre-shifted by idx whole bytes.
		part := make([]byte, idx, idx+len(b)+1)
		var carry uint16
		for _, e := range b {
			p := uint16(d)*uint16(e) + carry
			part = append(part, byte(p))
			carry = p >> 8
		}
		if carry != 0 {
			part = append(part, byte(carry))
		}
		acc = magAdd(acc, part)
	}
	return makeInt(neg, acc)
}
