package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 2.6005, Round(2.60051, 4))
	assert.Equal(t, 0.0313, Round(0.03125, 4))
	assert.Equal(t, -0.0313, Round(-0.03125, 4))
	assert.Equal(t, 1.13, Round(1.125, 2))

	t.Run("binary value below the tie rounds down", func(t *testing.T) {
		assert.Equal(t, 1.0, Round(1.005, 2))
		assert.Equal(t, -1.0, Round(-1.005, 2))
		assert.Equal(t, 2.6004, Round(2.60045, 4))

		combined := 11.0
		price := 2.5 * (0.85 + (combined/1000)*0.3)
		assert.Equal(t, 2.1332, Round(price, 4))
	})
	assert.Equal(t, 104.0, Round(104, 2))
	assert.Equal(t, 0.1, Round(0.1+0.2-0.2, 4))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "4.31%", FormatPercent(4.31))
	assert.Equal(t, "3.87%", FormatPercent(3.8650001))
	assert.Equal(t, "5.00%", FormatPercent(5))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "1.00%", FormatPercent(1.005))
	assert.Equal(t, "1.13%", FormatPercent(1.125))

	assert.Equal(t, 4.31, ParsePercent("4.31%"))
	assert.Equal(t, 4.31, ParsePercent(" 4.31 % "))
	assert.Equal(t, 0.0, ParsePercent("n/a"))
}

func TestParsePositive(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
		ok       bool
	}{
		{"2.5", 2.5, true},
		{" 1,500.00 ", 1500, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"--", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tc := range cases {
		v, ok := ParsePositive(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.expected, v, tc.in)
	}
}

func TestCharCodeSeed(t *testing.T) {
	assert.Equal(t, 294, CharCodeSeed("600000"))
	assert.Equal(t, 309, CharCodeSeed("600519"))
	assert.Equal(t, 325, CharCodeSeed("YAQZ"))
	assert.Equal(t, 0, CharCodeSeed(""))
	assert.Equal(t, CharCodeSeed("600519"), CharCodeSeed("915006"))
}
