package ndarray

import "fmt"

// NDArray is the kind-erased view of a Dense array, used where element kinds
// meet at runtime (cross-kind assign, conversion dispatch, interchange).
type NDArray interface {
	Kind() Kind
	Rank() int
	Shape() Shape
	Len() int
	Dim(k int) int
	Order() Order
}

// Dense is a rank 0-9 array of a single numeric kind over a flat buffer,
// addressed through an (offset, strides) descriptor. The descriptor never
// owns memory; owned-contiguous arrays hold a buffer allocated for them,
// borrowed views alias caller memory without any synchronization.
type Dense[T Number] struct {
	shape   Shape
	strides []int
	offset  int
	data    []T

	order Order
	owned bool
	// contig marks a canonical column-major descriptor covering the buffer
	// exactly; it gates the zero-copy Flatten path and slice fast paths.
	contig bool
}

var _ NDArray = (*Dense[float64])(nil)

// New allocates a zeroed owned-contiguous array. No dims means a scalar.
func New[T Number](dims ...int) (*Dense[T], error) {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	allocations.Inc()
	return newOwned[T](shape), nil
}

// newOwned builds an owned canonical array for an already validated shape.
func newOwned[T Number](shape Shape) *Dense[T] {
	return &Dense[T]{
		shape:   shape,
		strides: shape.Strides(),
		data:    make([]T, shape.NumElements()),
		order:   ColumnMajor,
		owned:   true,
		contig:  true,
	}
}

// Wrap builds a contiguous canonical array over a caller buffer. The buffer
// must hold at least the shape's element count; exactly that prefix is
// addressed, so Flatten without a forced copy hands the buffer back as is.
func Wrap[T Number](buf []T, dims ...int) (*Dense[T], error) {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	if len(buf) < n {
		return nil, fmt.Errorf("%w: buffer of %d for %d elements", ErrViewOutOfBounds, len(buf), n)
	}
	return &Dense[T]{
		shape:   shape,
		strides: shape.Strides(),
		data:    buf[:n],
		order:   ColumnMajor,
		owned:   true,
		contig:  true,
	}, nil
}

// WrapStrided builds a borrowed view over caller memory with an arbitrary
// offset and per-axis strides. The descriptor is validated once here; element
// access is unchecked afterwards. The order tag is inferred from the strides.
func WrapStrided[T Number](buf []T, offset int, strides []int, dims ...int) (*Dense[T], error) {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrInvalidShape, len(strides), len(shape))
	}
	if err := checkBounds(offset, shape, strides, len(buf)); err != nil {
		return nil, err
	}
	s := make([]int, len(strides))
	copy(s, strides)
	views.Inc()
	return &Dense[T]{
		shape:   shape,
		strides: s,
		offset:  offset,
		data:    buf,
		order:   inferOrder(s),
		contig:  isCanonical(offset, shape, s, len(buf)),
	}, nil
}

// NewScalar builds a rank-0 array holding one element.
func NewScalar[T Number](v T) *Dense[T] {
	a, _ := New[T]()
	a.data[0] = v
	return a
}

// Get returns the element at the given rank-many indices. Hot path: indices
// are not validated.
func (a *Dense[T]) Get(idx ...int) T {
	p := a.offset
	for k, i := range idx {
		p += i * a.strides[k]
	}
	return a.data[p]
}

// Set stores v at the given rank-many indices. Hot path: unchecked.
func (a *Dense[T]) Set(v T, idx ...int) {
	p := a.offset
	for k, i := range idx {
		p += i * a.strides[k]
	}
	a.data[p] = v
}

// Kind returns the element kind tag.
func (a *Dense[T]) Kind() Kind { return KindOf[T]() }

// Rank returns the number of axes.
func (a *Dense[T]) Rank() int { return len(a.shape) }

// Shape returns the dimensions. The returned slice must not be mutated.
func (a *Dense[T]) Shape() Shape { return a.shape }

// Len returns the total element count.
func (a *Dense[T]) Len() int { return a.shape.NumElements() }

// Dim returns the size of axis k, or 1 for k at or beyond the rank.
func (a *Dense[T]) Dim(k int) int { return a.shape.Dim(k) }

// Strides returns a copy of the per-axis strides.
func (a *Dense[T]) Strides() []int {
	s := make([]int, len(a.strides))
	copy(s, a.strides)
	return s
}

// Offset returns the descriptor's base position in the backing buffer.
func (a *Dense[T]) Offset() int { return a.offset }

// Order returns the layout classification fixed at construction.
func (a *Dense[T]) Order() Order { return a.order }

// Owned reports whether the array exclusively owns its buffer. Borrowed
// views alias caller memory and share mutation rights with it.
func (a *Dense[T]) Owned() bool { return a.owned }
