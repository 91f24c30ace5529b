package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Generator produces elements one at a time, used as a pluggable fill source.
type Generator[T Number] interface {
	Next() T
}

// Scanner folds elements into an accumulator. Initialize receives the first
// element in traversal order, Update every later one. Because traversal
// nesting depends on the storage order, accumulators should be
// order-independent unless the caller controls the layout.
type Scanner[T Number] interface {
	Initialize(v T)
	Update(v T)
}

// Fill sets every element to v.
func (a *Dense[T]) Fill(v T) {
	if a.contig {
		for i := range a.data {
			a.data[i] = v
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] = v })
}

// Incr adds v to every element.
func (a *Dense[T]) Incr(v T) {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			floats.AddConst(float64(v), f)
			return
		}
		for i := range a.data {
			a.data[i] += v
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] += v })
}

// Decr subtracts v from every element.
func (a *Dense[T]) Decr(v T) {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			floats.AddConst(-float64(v), f)
			return
		}
		for i := range a.data {
			a.data[i] -= v
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] -= v })
}

// Scale multiplies every element by v.
func (a *Dense[T]) Scale(v T) {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			floats.Scale(float64(v), f)
			return
		}
		for i := range a.data {
			a.data[i] *= v
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] *= v })
}

// Map replaces every element with f(element).
func (a *Dense[T]) Map(f func(T) T) {
	if a.contig {
		for i, v := range a.data {
			a.data[i] = f(v)
		}
		return
	}
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] = f(a.data[p]) })
}

// FillFrom draws one element per position from the generator, in traversal
// order.
func (a *Dense[T]) FillFrom(g Generator[T]) {
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { a.data[p] = g.Next() })
}

// Scan folds every element into the scanner, seeding from the first element
// visited.
func (a *Dense[T]) Scan(s Scanner[T]) {
	first := true
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) {
		if first {
			s.Initialize(a.data[p])
			first = false
			return
		}
		s.Update(a.data[p])
	})
}

// Sum returns the sum of all elements in the float64 reduction domain.
// 8-bit elements contribute their unsigned value. Integer sums are exact
// below 2^53.
func (a *Dense[T]) Sum() float64 {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			return floats.Sum(f)
		}
	}
	var s float64
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) { s += widen(a.data[p]) })
	return s
}

// Min returns the smallest element in the float64 reduction domain,
// seeded from the first element. 8-bit elements compare as unsigned.
func (a *Dense[T]) Min() float64 {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			return floats.Min(f)
		}
	}
	lo, _ := a.MinMax()
	return lo
}

// Max returns the largest element in the float64 reduction domain.
// 8-bit elements compare as unsigned.
func (a *Dense[T]) Max() float64 {
	if a.contig {
		if f, ok := any(a.data).([]float64); ok {
			return floats.Max(f)
		}
	}
	_, hi := a.MinMax()
	return hi
}

// MinMax returns both extremes in one pass.
func (a *Dense[T]) MinMax() (lo, hi float64) {
	first := true
	forEach(a.shape, a.strides, a.offset, a.order, func(p int) {
		v := widen(a.data[p])
		if first {
			lo, hi = v, v
			first = false
			return
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	})
	return lo, hi
}

// Average returns Sum divided by the element count, always in floating point.
func (a *Dense[T]) Average() float64 {
	return a.Sum() / float64(a.Len())
}

// Assign copies src into dst elementwise with kind conversion through the
// destination kind's native cast. Shapes must match exactly; conformance is
// checked before the first write, so a failed assign never mutates dst.
func Assign[D, S Number](dst *Dense[D], src *Dense[S]) error {
	if !dst.shape.Equal(src.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrNonConformableShape, dst.shape, src.shape)
	}
	if sd, ok := any(src.data).([]D); ok && dst.contig && src.contig {
		copy(dst.data, sd)
		return nil
	}
	forEachPair(dst.shape, dst.offset, dst.strides, dst.order, src.offset, src.strides, func(pd, ps int) {
		dst.data[pd] = D(src.data[ps])
	})
	return nil
}

// AssignArray is the kind-erased form of Assign, dispatching over the six
// element kinds of both operands.
func AssignArray(dst, src NDArray) error {
	switch d := dst.(type) {
	case *Dense[int8]:
		return assignInto(d, src)
	case *Dense[int16]:
		return assignInto(d, src)
	case *Dense[int32]:
		return assignInto(d, src)
	case *Dense[int64]:
		return assignInto(d, src)
	case *Dense[float32]:
		return assignInto(d, src)
	case *Dense[float64]:
		return assignInto(d, src)
	default:
		return fmt.Errorf("%w: destination %T", ErrUnsupportedKind, dst)
	}
}

func assignInto[D Number](dst *Dense[D], src NDArray) error {
	switch s := src.(type) {
	case *Dense[int8]:
		return Assign(dst, s)
	case *Dense[int16]:
		return Assign(dst, s)
	case *Dense[int32]:
		return Assign(dst, s)
	case *Dense[int64]:
		return Assign(dst, s)
	case *Dense[float32]:
		return Assign(dst, s)
	case *Dense[float64]:
		return Assign(dst, s)
	default:
		return fmt.Errorf("%w: source %T", ErrUnsupportedKind, src)
	}
}

// CopyFrom bulk-assigns from a flat buffer laid out in canonical column-major
// order. The buffer length must equal the element count.
func (a *Dense[T]) CopyFrom(buf []T) error {
	if len(buf) != a.Len() {
		return fmt.Errorf("%w: buffer of %d for %d elements", ErrNonConformableShape, len(buf), a.Len())
	}
	if a.contig {
		copy(a.data, buf)
		return nil
	}
	i := 0
	forEach(a.shape, a.strides, a.offset, ColumnMajor, func(p int) {
		a.data[p] = buf[i]
		i++
	})
	return nil
}
