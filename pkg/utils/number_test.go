package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.236))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.234))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -2.57, RoundWithTwoDecimalPlace(-2.567))
}

func TestIntOrZero(t *testing.T) {
	assert.Equal(t, 0, IntOrZero(nil))
	assert.Equal(t, 42, IntOrZero(IntPtr(42)))
}

func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, 0.0, FloatOrZero(nil))
	assert.Equal(t, 3.5, FloatOrZero(FloatPtr(3.5)))
}
