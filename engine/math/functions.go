package math

import (
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// NewMat4Identity creates and returns an identity matrix.
func NewMat4Identity() Mat4 {
	m := Mat4{}
	m.Data[0] = 1.0
	m.Data[5] = 1.0
	m.Data[10] = 1.0
	m.Data[15] = 1.0
	return m
}

// NewMat4Orthographic creates an orthographic projection matrix.
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	m := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	m.Data[0] = -2.0 * lr
	m.Data[5] = -2.0 * bt
	m.Data[10] = 2.0 * nf

	m.Data[12] = (left + right) * lr
	m.Data[13] = (top + bottom) * bt
	m.Data[14] = (farClip + nearClip) * nf
	return m
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
