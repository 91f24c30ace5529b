// Package ndarray implements dense multi-dimensional numeric arrays of rank 0
// through 9 over six element kinds (int8/16/32/64, float32/64).
//
// An array is a flat buffer interpreted through an (offset, strides)
// descriptor. Owned-contiguous arrays allocate their buffer in canonical
// column-major layout (axis 0 fastest-varying); borrowed views alias caller
// memory with arbitrary strides, validated once at construction. The stride
// sequence fixes an Order tag that steers loop nesting in bulk operations but
// never their result.
//
// All operations are single-threaded and synchronous. Borrowed storage is
// never synchronized: overlapping views of one buffer are the caller's
// problem to coordinate.
package ndarray
