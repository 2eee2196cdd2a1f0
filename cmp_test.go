package bignum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// cmpOrdered is sorted ascending; every pair of entries must compare
// according to their positions.
var cmpOrdered = []string{
	"-340282366920938463463374607431768211456",
	"-18446744073709551616",
	"-65536",
	"-256", // longer magnitude, negative: smaller
	"-255",
	"-2",
	"-1",
	"0",
	"1",
	"2",
	"255",
	"256", // longer magnitude, non-negative: larger
	"65536",
	"18446744073709551616",
	"340282366920938463463374607431768211456",
}

func TestCmp(t *testing.T) {
	for x, xs := range cmpOrdered {
		for y, ys := range cmpOrdered {
			a, b := bnum(xs), bnum(ys)
			c := a.Cmp(b)
			switch {
			case x < y:
				require.Negative(t, c, "%s vs %s", xs, ys)
			case x > y:
				require.Positive(t, c, "%s vs %s", xs, ys)
			default:
				require.Zero(t, c, "%s vs %s", xs, ys)
			}

			// Antisymmetry.
			d := b.Cmp(a)
			require.Equal(t, c == 0, d == 0)
			require.Equal(t, c > 0, d < 0)
		}
	}
}

func TestCmpDerived(t *testing.T) {
	for _, xs := range cmpOrdered {
		for _, ys := range cmpOrdered {
			t.Run(fmt.Sprintf("%s/%s", xs, ys), func(t *testing.T) {
				a, b := bnum(xs), bnum(ys)
				c := a.Cmp(b)
				require.Equal(t, c == 0, a.Equal(b))
				require.Equal(t, c > 0, a.GreaterThan(b))
				require.Equal(t, c >= 0, a.GreaterOrEqualTo(b))
				require.Equal(t, c < 0, a.LessThan(b))
				require.Equal(t, c <= 0, a.LessOrEqualTo(b))
			})
		}
	}
}

func TestCmpZero(t *testing.T) {
	// There is no observable negative zero.
	require.Zero(t, FromInt64(5).Sub(FromInt64(5)).Cmp(Int{}))
	require.Zero(t, FromInt64(-5).Add(FromInt64(5)).Cmp(FromInt64(0)))
	require.True(t, FromInt64(0).Neg().Equal(FromInt64(0)))
}
