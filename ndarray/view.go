package ndarray

import "fmt"

// Range selects (start, stop, step) along one axis, stop inclusive when
// reachable. Start and stop follow the negative-index convention (-1 is the
// last element). Use All for a full axis.
type Range struct {
	Start, Stop, Step int
	all               bool
}

// All selects every index of an axis.
func All() Range { return Range{all: true} }

// NewRange selects start, start+step, ... up to and including stop when the
// step lands on it.
func NewRange(start, stop, step int) Range {
	return Range{Start: start, Stop: stop, Step: step}
}

// resolveIndex applies the negative-index convention and bounds-checks the
// result against dimension d of axis k.
func resolveIndex(idx, d, k int) (int, error) {
	if idx < 0 {
		idx += d
	}
	if idx < 0 || idx >= d {
		return 0, fmt.Errorf("%w: index %d on axis %d of size %d", ErrIndexOutOfRange, idx, k, d)
	}
	return idx, nil
}

// Slice drops one axis at a fixed index, producing a rank-(r-1) view sharing
// the backing buffer. Negative axis counts from the end (-1 is the last
// axis); negative index follows the same convention within the axis.
func (a *Dense[T]) Slice(axis, index int) (*Dense[T], error) {
	r := a.Rank()
	if axis < 0 {
		axis += r
	}
	if axis < 0 || axis >= r {
		return nil, fmt.Errorf("%w: axis %d for rank %d", ErrIndexOutOfRange, axis, r)
	}
	idx, err := resolveIndex(index, a.shape[axis], axis)
	if err != nil {
		return nil, err
	}
	shape := make(Shape, 0, r-1)
	strides := make([]int, 0, r-1)
	for k := 0; k < r; k++ {
		if k == axis {
			continue
		}
		shape = append(shape, a.shape[k])
		strides = append(strides, a.strides[k])
	}
	off := a.offset + idx*a.strides[axis]
	views.Inc()
	return &Dense[T]{
		shape:   shape,
		strides: strides,
		offset:  off,
		data:    a.data,
		order:   inferOrder(strides),
		contig:  isCanonical(off, shape, strides, len(a.data)),
	}, nil
}

// View selects a sub-array per axis without copying. Missing trailing ranges
// select their whole axis. The view keeps the source rank: per selected axis
// the dimension becomes the selected count and the stride is scaled by the
// step.
func (a *Dense[T]) View(ranges ...Range) (*Dense[T], error) {
	r := a.Rank()
	if len(ranges) > r {
		return nil, fmt.Errorf("%w: %d ranges for rank %d", ErrInvalidShape, len(ranges), r)
	}
	shape := make(Shape, r)
	strides := make([]int, r)
	off := a.offset
	for k := 0; k < r; k++ {
		if k >= len(ranges) || ranges[k].all {
			shape[k] = a.shape[k]
			strides[k] = a.strides[k]
			continue
		}
		rg := ranges[k]
		if rg.Step == 0 {
			return nil, fmt.Errorf("%w: zero step on axis %d", ErrIndexOutOfRange, k)
		}
		start, err := resolveIndex(rg.Start, a.shape[k], k)
		if err != nil {
			return nil, err
		}
		stop, err := resolveIndex(rg.Stop, a.shape[k], k)
		if err != nil {
			return nil, err
		}
		if (stop-start)*rg.Step < 0 {
			return nil, fmt.Errorf("%w: empty range [%d:%d:%d] on axis %d", ErrIndexOutOfRange, start, stop, rg.Step, k)
		}
		shape[k] = (stop-start)/rg.Step + 1
		strides[k] = a.strides[k] * rg.Step
		off += start * a.strides[k]
	}
	views.Inc()
	return &Dense[T]{
		shape:   shape,
		strides: strides,
		offset:  off,
		data:    a.data,
		order:   inferOrder(strides),
		contig:  isCanonical(off, shape, strides, len(a.data)),
	}, nil
}

// Take gathers an explicit index list per axis into a new owned array. A nil
// selection keeps the whole axis. Arbitrary gathers are not expressible as a
// single stride, so the result is always a materialized copy.
func (a *Dense[T]) Take(sel ...[]int) (*Dense[T], error) {
	r := a.Rank()
	if len(sel) > r {
		return nil, fmt.Errorf("%w: %d selections for rank %d", ErrInvalidShape, len(sel), r)
	}
	// Per-axis tables of pre-scaled buffer displacements.
	tabs := make([][]int, r)
	shape := make(Shape, r)
	for k := 0; k < r; k++ {
		d := a.shape[k]
		if k >= len(sel) || sel[k] == nil {
			tab := make([]int, d)
			for i := range tab {
				tab[i] = i * a.strides[k]
			}
			tabs[k] = tab
			shape[k] = d
			continue
		}
		tab := make([]int, len(sel[k]))
		for i, idx := range sel[k] {
			ri, err := resolveIndex(idx, d, k)
			if err != nil {
				return nil, err
			}
			tab[i] = ri * a.strides[k]
		}
		tabs[k] = tab
		shape[k] = len(tab)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	out := newOwned[T](shape)
	allocations.Inc()
	copies.Inc()
	var idx [MaxRank]int
	n := shape.NumElements()
	for c := 0; c < n; c++ {
		p := a.offset
		for k := 0; k < r; k++ {
			p += tabs[k][idx[k]]
		}
		out.data[c] = a.data[p]
		for k := 0; k < r; k++ {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out, nil
}

// Flatten materializes the contents as one flat buffer in canonical
// column-major order. When the storage is already contiguous canonical and no
// copy is forced, the backing buffer itself is returned; callers needing
// independence from the array must force the copy.
func (a *Dense[T]) Flatten(forceCopy bool) []T {
	if a.contig && !forceCopy {
		return a.data
	}
	out := make([]T, a.Len())
	i := 0
	forEach(a.shape, a.strides, a.offset, ColumnMajor, func(p int) {
		out[i] = a.data[p]
		i++
	})
	copies.Inc()
	return out
}
