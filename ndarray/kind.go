package ndarray

// Number is the constraint covering the six supported element kinds. The set
// is exact: kind dispatch is total over these six types.
type Number interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Kind is the runtime tag for an array's element kind.
type Kind int

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Float32
	Float64
)

// Size returns the byte size of one element of the kind.
func (k Kind) Size() int {
	switch k {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("ndarray: unknown kind")
	}
}

func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// KindOf returns the runtime kind tag for a compile-time element type.
func KindOf[T Number]() Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("ndarray: unsupported element type")
	}
}

// widen lifts an element into the float64 reduction domain. 8-bit elements are
// reduced as unsigned (0-255); Get/Set and arithmetic keep them signed.
func widen[T Number](v T) float64 {
	if b, ok := any(v).(int8); ok {
		return float64(uint8(b))
	}
	return float64(v)
}
