package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2, Max(1, 2))
	assert.Equal(2.5, Max(2.5, -1.0))
	assert.Equal("a", Min("b", "a"))
}

func TestMath_Abs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 0.5, Abs(0.5))
}

func TestMath_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, Clamp(-0.2, 0, 1))
	assert.Equal(1.0, Clamp(1.7, 0, 1))
	assert.Equal(0.25, Clamp(0.25, 0, 1))
	assert.True(math.IsNaN(Clamp(math.NaN(), 0.0, 1.0)))
}
