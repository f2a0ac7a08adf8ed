package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{2.5, 2.5},
		{3, 3},
		{3.01, 3},
		{-7, -3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClampSpeed(c.in, 3), "clamp(%v)", c.in)
	}
}

func TestWithinToleranceIsInclusive(t *testing.T) {
	assert.True(t, WithinTolerance(0, 0, 0, 10, -10, 10, 10))
	assert.False(t, WithinTolerance(0, 0, 0, 10.001, 0, 0, 10))
	assert.False(t, WithinTolerance(0, 0, 0, 0, 0, -11, 10))
}

func TestApproach(t *testing.T) {
	// inside the threshold the value holds
	assert.Equal(t, 5.0, Approach(5, 15, 10, 1, 0.5))
	// outside it closes gain*dt of the gap
	assert.InDelta(t, 10.0, Approach(0, 20, 10, 1, 0.5), 1e-9)
	assert.InDelta(t, -2.0, Approach(0, -40, 10, 1, 0.05), 1e-9)
}
