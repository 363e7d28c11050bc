package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	assert.Nil(t, WrapText("   ", 10))
	assert.Equal(t, []string{"Increase", "damage by", "25%"}, WrapText("Increase damage by 25%", 9))
	assert.Equal(t, []string{"a b c"}, WrapText("a  b   c", 0))
	assert.Equal(t, []string{"supercalifragilistic", "x"}, WrapText("supercalifragilistic x", 5))
}

func TestToRoman(t *testing.T) {
	assert.Equal(t, "", ToRoman(0))
	assert.Equal(t, "IV", ToRoman(4))
	assert.Equal(t, "IX", ToRoman(9))
	assert.Equal(t, "XIV", ToRoman(14))
	assert.Equal(t, "MCMXCIV", ToRoman(1994))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "00:59", FormatClock(59.9))
	assert.Equal(t, "02:05", FormatClock(125))
}
