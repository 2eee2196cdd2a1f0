package bignum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c string
	}{
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"1", "2", "3"},
		{"200", "100", "300"}, // carries past the first byte
		{"255", "1", "256"},
		{"255", "255", "510"},
		{"65535", "1", "65536"}, // carry chain across two bytes
		{"-2", "-1", "-3"},
		{"-2", "1", "-1"},
		{"-1", "1", "0"},
		{"2", "-5", "-3"},
		{"-5", "2", "-3"},
		{"256", "-1", "255"},
		{"0xFFFFFFFFFFFFFFFF", "1", "0x10000000000000000"},
		{"0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", "1", "0x100000000000000000000000000000000"},
		{"123456789012345678901234567890", "-123456789012345678901234567890", "0"},
	} {
		t.Run(fmt.Sprintf("[%d]%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			a, b, c := bnum(tc.a), bnum(tc.b), bnum(tc.c)
			got := a.Add(b)
			requireCanonical(t, got)
			require.True(t, c.Equal(got), "found %s", got.AsBigInt())

			// Addition commutes.
			require.True(t, c.Equal(b.Add(a)))
		})
	}
}

func TestSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c string
	}{
		{"0", "0", "0"},
		{"5", "0", "5"},
		{"10", "5", "5"},
		{"5", "10", "-5"}, // swap-and-negate path
		{"5", "5", "0"},
		{"256", "1", "255"}, // borrow chain
		{"0x10000000000000000", "1", "0xFFFFFFFFFFFFFFFF"},
		{"5", "-10", "15"},
		{"-5", "10", "-15"},
		{"-5", "-10", "5"},
		{"-10", "-5", "-5"},
		{"-123456789012345678901234567890", "-123456789012345678901234567890", "0"},
	} {
		t.Run(fmt.Sprintf("[%d]%s-%s", idx, tc.a, tc.b), func(t *testing.T) {
			a, b, c := bnum(tc.a), bnum(tc.b), bnum(tc.c)
			got := a.Sub(b)
			requireCanonical(t, got)
			require.True(t, c.Equal(got), "found %s", got.AsBigInt())
		})
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	vals := []string{"0", "1", "-1", "255", "-255", "256", "65535", "-65536",
		"123456789012345678901234567890"}
	for _, as := range vals {
		for _, bs := range vals {
			a, b := bnum(as), bnum(bs)
			require.True(t, a.Add(b).Sub(b).Equal(a), "(%s+%s)-%s", as, bs, bs)
		}
	}
}
