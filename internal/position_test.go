package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePosition(t *testing.T) {
	tests := map[string]Position{
		"A1":   {Row: 0, Col: 0},
		"AB12": {Row: 11, Col: 27},
		"Z25":  {Row: 24, Col: 25},
	}
	for in, want := range tests {
		got, err := ParsePosition(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func Test_ParsePosition_malformed(t *testing.T) {
	for _, in := range []string{"", "1A", "A", "12", "a1", "A1B2"} {
		_, err := ParsePosition(in)
		assert.ErrorIs(t, err, ErrParsePosition)
	}
}

func Test_Position_roundTrip(t *testing.T) {
	for _, label := range []string{"A1", "Z1", "AA1", "AB12", "ZZ9999"} {
		pos, err := ParsePosition(label)
		assert.NoError(t, err)
		assert.Equal(t, label, FormatPosition(pos))
	}
}

func Test_Position_IsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: -1}.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}

func Test_decodeColumn(t *testing.T) {
	tests := map[string]int{
		"A":   0,
		"Z":   25,
		"AA":  26,
		"AB":  27,
		"AZ":  51,
		"BA":  52,
		"ZZ":  701,
		"AAA": 702,
	}
	for in, want := range tests {
		got, err := decodeColumn(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
