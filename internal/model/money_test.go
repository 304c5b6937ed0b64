package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19.999", "20.00"},
		{"19.994", "19.99"},
		{"19.995", "20.00"}, // half up
		{"5", "5.00"},
		{"0", "0.00"},
		{"45.5", "45.50"},
	}
	for _, tc := range cases {
		got := NormalizePrice(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, PriceString(got), "input %s", tc.in)
	}
}
