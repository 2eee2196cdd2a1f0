package bignum

// magCmp compares two normalized magnitudes, longer-is-larger, then
// byte-wise from the most significant end.
func magCmp(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for j := len(a) - 1; j >= 0; j-- {
		if a[j] != b[j] {
			if a[j] > b[j] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := magCmp(i.magnitude(), n.magnitude())
	if i.neg {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool {
	return i.Cmp(n) == 0
}

func (i Int) GreaterThan(n Int) bool {
	return i.Cmp(n) > 0
}

func (i Int) GreaterOrEqualTo(n Int) bool {
	return i.Cmp(n) >= 0
}

func (i Int) LessThan(n Int) bool {
	return i.Cmp(n) < 0
}

func (i Int) LessOrEqualTo(n Int) bool {
	return i.Cmp(n) <= 0
}
