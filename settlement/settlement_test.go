package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleToBaseUnit(t *testing.T) {
	cases := []struct {
		name     string
		amount   int64
		decimals uint8
		want     string
	}{
		{"six decimals", 1000, 6, "1000000000"},
		{"eighteen decimals", 1, 18, "1000000000000000000"},
		{"zero decimals", 42, 0, "42"},
		{"single unit", 1, 6, "1000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScaleToBaseUnit(tc.amount, tc.decimals)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
