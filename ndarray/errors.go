package ndarray

import "errors"

// Sentinel errors for array construction and bulk operations.
var (
	// ErrInvalidShape indicates a non-positive dimension, a rank above MaxRank,
	// or a stride/dimension count mismatch in a descriptor.
	ErrInvalidShape = errors.New("ndarray: invalid shape")
	// ErrViewOutOfBounds indicates an addressing descriptor that escapes its
	// backing buffer.
	ErrViewOutOfBounds = errors.New("ndarray: view out of bounds")
	// ErrIndexOutOfRange indicates a slice, range or gather index outside a
	// dimension's bound, or an empty range selection.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")
	// ErrNonConformableShape indicates an elementwise copy between arrays (or
	// an array and a flat buffer) of different shapes.
	ErrNonConformableShape = errors.New("ndarray: non-conformable shapes")
	// ErrUnsupportedKind indicates an element kind outside the six supported
	// numeric kinds. This is a programming error, not a runtime condition.
	ErrUnsupportedKind = errors.New("ndarray: unsupported element kind")
)
