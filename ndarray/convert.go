package ndarray

import "fmt"

// Convert produces an array of element kind D from src. Converting to the
// source's own kind is the identity and returns the same instance. Every
// other conversion allocates a new owned-contiguous array in canonical order
// and copies through D's native cast: integer narrowing truncates,
// float-to-integer truncates toward zero, integer-to-float may lose precision
// past the mantissa.
func Convert[D, S Number](src *Dense[S]) *Dense[D] {
	if same, ok := any(src).(*Dense[D]); ok {
		return same
	}
	out := newOwned[D](src.shape.Clone())
	allocations.Inc()
	conversions.Inc()
	i := 0
	forEach(src.shape, src.strides, src.offset, ColumnMajor, func(p int) {
		out.data[i] = D(src.data[p])
		i++
	})
	return out
}

// ToInt8 converts to 8-bit integers.
func (a *Dense[T]) ToInt8() *Dense[int8] { return Convert[int8](a) }

// ToInt16 converts to 16-bit integers.
func (a *Dense[T]) ToInt16() *Dense[int16] { return Convert[int16](a) }

// ToInt32 converts to 32-bit integers.
func (a *Dense[T]) ToInt32() *Dense[int32] { return Convert[int32](a) }

// ToInt64 converts to 64-bit integers.
func (a *Dense[T]) ToInt64() *Dense[int64] { return Convert[int64](a) }

// ToFloat32 converts to 32-bit floats.
func (a *Dense[T]) ToFloat32() *Dense[float32] { return Convert[float32](a) }

// ToFloat64 converts to 64-bit floats.
func (a *Dense[T]) ToFloat64() *Dense[float64] { return Convert[float64](a) }

// ConvertKind is the kind-erased conversion entry point.
func ConvertKind(a NDArray, k Kind) (NDArray, error) {
	switch src := a.(type) {
	case *Dense[int8]:
		return convertTo(src, k)
	case *Dense[int16]:
		return convertTo(src, k)
	case *Dense[int32]:
		return convertTo(src, k)
	case *Dense[int64]:
		return convertTo(src, k)
	case *Dense[float32]:
		return convertTo(src, k)
	case *Dense[float64]:
		return convertTo(src, k)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, a)
	}
}

func convertTo[S Number](src *Dense[S], k Kind) (NDArray, error) {
	switch k {
	case Int8:
		return src.ToInt8(), nil
	case Int16:
		return src.ToInt16(), nil
	case Int32:
		return src.ToInt32(), nil
	case Int64:
		return src.ToInt64(), nil
	case Float32:
		return src.ToFloat32(), nil
	case Float64:
		return src.ToFloat64(), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedKind, k)
	}
}
