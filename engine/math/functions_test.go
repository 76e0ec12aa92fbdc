package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxClamp(t *testing.T) {
	assert.Equal(t, int32(7), Max(int32(3), int32(7)))
	assert.Equal(t, float32(0.25), Min(float32(0.25), float32(1.0)))
	assert.Equal(t, 5, Clamp(9, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
}

func TestExtent2DEquals(t *testing.T) {
	a := Extent2D{Width: 1024, Height: 768}
	assert.True(t, a.Equals(Extent2D{Width: 1024, Height: 768}))
	assert.False(t, a.Equals(Extent2D{Width: 1024, Height: 512}))
	assert.False(t, a.Equals(Extent2D{}))
}

func TestNewMat4OrthographicUnitSquare(t *testing.T) {
	m := NewMat4Orthographic(0, 1, 0, 1, -1, 1)

	// maps the unit square onto clip space: scale by 2, translate by -1
	assert.InDelta(t, 2.0, m.Data[0], 1e-6)
	assert.InDelta(t, 2.0, m.Data[5], 1e-6)
	assert.InDelta(t, -1.0, m.Data[10], 1e-6)
	assert.InDelta(t, -1.0, m.Data[12], 1e-6)
	assert.InDelta(t, -1.0, m.Data[13], 1e-6)
	assert.InDelta(t, 0.0, m.Data[14], 1e-6)
	assert.InDelta(t, 1.0, m.Data[15], 1e-6)
}

func TestNewMat4Identity(t *testing.T) {
	m := NewMat4Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			assert.Equal(t, want, m.Data[row*4+col])
		}
	}
}
