package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"350", 350, true},
		{"349.99", 349.99, true},
		{"1 234,50", 1234.50, true},
		{"197 ,00", 197, true},
		{"٣٥٠", 350, true},
		{"٢٤٥٫٥", 245.5, true},
		{"1 250", 1250, true},
		{"(25)", -25, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"-", 0, false},
		{"free", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseFloat(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestFoldDigits(t *testing.T) {
	assert.Equal(t, "100 مل", FoldDigits("١٠٠ مل"))
	assert.Equal(t, "123456789", FoldDigits("۱۲۳456789"))
	assert.Equal(t, "no digits", FoldDigits("no digits"))
}
