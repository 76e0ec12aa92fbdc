package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief a 4x4 matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/** @brief A two-component integer extent, used for framebuffer dimensions. */
type Extent2D struct {
	Width  int32
	Height int32
}

func (e Extent2D) Equals(other Extent2D) bool {
	return e.Width == other.Width && e.Height == other.Height
}
