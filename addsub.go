package bignum

// magAdd adds two magnitudes byte-wise with carry propagation.
func magAdd(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a), len(a)+1)
	var carry uint16
	for j := 0; j < len(a); j++ {
		sum := uint16(a[j]) + carry
		if j < len(b) {
			sum += uint16(b[j])
		}
		out[j] = byte(sum)
		carry = sum >> 8
	}
	if carry != 0 {
		out = append(out, byte(carry))
	}
	return out
}

// magSub subtracts b from a byte-wise with borrow propagation. a must be
// >= b; callers arrange that via the sign dispatch in Add and Sub.
func magSub(a, b []byte) []byte {
	out := make([]byte, len(a))
	var borrow uint16
	for j := 0; j < len(a); j++ {
		d := uint16(a[j]) - borrow
		if j < len(b) {
			d -= uint16(b[j])
		}
		out[j] = byte(d)
		borrow = (d >> 8) & 1
	}
	return out
}

func (i Int) Add(n Int) Int {
	a, b := i.magnitude(), n.magnitude()
	if i.neg == n.neg {
		return makeInt(i.neg, magAdd(a, b))
	}
	// Signs differ: subtract the smaller magnitude from the larger; the
	// result takes the sign of the larger.
	switch magCmp(a, b) {
	case 1:
		return makeInt(i.neg, magSub(a, b))
	case -1:
		return makeInt(n.neg, magSub(b, a))
	default:
		return Int{mag: []byte{0}}
	}
}

func (i Int) Sub(n Int) Int {
	if n.neg {
		// a - (-b) == a + b
		return i.Add(n.Neg())
	}
	if i.neg {
		// (-a) - b == -(a + b)
		return i.Neg().Add(n).Neg()
	}
	a, b := i.magnitude(), n.magnitude()
	if magCmp(a, b) < 0 {
		return makeInt(true, magSub(b, a))
	}
	return makeInt(false, magSub(a, b))
}
