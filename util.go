package bignum

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.GreaterOrEqualTo(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the larger of a and b. a is returned if they are equal.
func Larger(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b. a is returned if they are equal.
func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
