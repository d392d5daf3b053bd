package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantizeRoundsHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2850.505", "2850.51"},
		{"2850.504", "2850.50"},
		{"0.005", "0.01"},
		{"1200", "1200"},
		{"450.5", "450.5"},
	}

	for _, tc := range cases {
		got := Quantize(decimal.RequireFromString(tc.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"Quantize(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestFromFloat(t *testing.T) {
	assert.True(t, FromFloat(450.50).Equal(decimal.RequireFromString("450.5")))
	assert.True(t, FromFloat(0).Equal(decimal.Zero))
}
