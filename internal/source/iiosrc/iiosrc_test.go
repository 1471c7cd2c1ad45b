package iiosrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateAppliesMountMatrix(t *testing.T) {
	m := [3][3]float64{
		{0, 1, 0},
		{-1, 0, 0},
		{0, 0, 1},
	}

	got := rotate(m, [3]float64{1, 0, 0})
	assert.Equal(t, [3]float64{0, -1, 0}, got)
}

func TestRotateIdentityIsNoOp(t *testing.T) {
	v := [3]float64{0.25, -0.5, 9.81}
	assert.Equal(t, v, rotate(IdentityMount, v))
}

func TestClampBoundsNormalizedReadings(t *testing.T) {
	assert.Equal(t, 1.0, clamp(3.2, -1, 1))
	assert.Equal(t, -1.0, clamp(-3.2, -1, 1))
	assert.Equal(t, 0.5, clamp(0.5, -1, 1))
}
