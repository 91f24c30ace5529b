package ndarray

import "fmt"

// MaxRank is the highest supported rank. Rank 0 denotes a scalar.
const MaxRank = 9

// Shape is the ordered list of per-axis dimension sizes. A nil or empty Shape
// is the rank-0 scalar shape.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// NumElements returns the total element count. A scalar has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Dim returns the size of axis k, or 1 for any k at or beyond the rank.
func (s Shape) Dim(k int) int {
	if k >= len(s) {
		return 1
	}
	return s[k]
}

// Validate checks that every dimension is positive and the rank is supported.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return fmt.Errorf("%w: rank %d exceeds %d", ErrInvalidShape, len(s), MaxRank)
	}
	for k, d := range s {
		if d < 1 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, k, d)
		}
	}
	return nil
}

// Equal reports whether two shapes match exactly. There is no broadcasting.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Strides returns the canonical column-major strides: axis 0 is the
// fastest-varying axis with stride 1.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for k, d := range s {
		strides[k] = acc
		acc *= d
	}
	return strides
}
