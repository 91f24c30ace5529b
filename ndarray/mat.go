package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToMat copies a rank-2 float64 array into a gonum dense matrix, for handing
// off to linear-algebra consumers. Axis 0 maps to rows.
func ToMat(a *Dense[float64]) (*mat.Dense, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("%w: rank %d, need 2", ErrNonConformableShape, a.Rank())
	}
	rows, cols := a.shape[0], a.shape[1]
	m := mat.NewDense(rows, cols, nil)
	raw := m.RawMatrix()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			raw.Data[i*raw.Stride+j] = a.data[a.offset+i*a.strides[0]+j*a.strides[1]]
		}
	}
	return m, nil
}

// FromMat copies a gonum matrix into a new rank-2 owned array.
func FromMat(m mat.Matrix) (*Dense[float64], error) {
	rows, cols := m.Dims()
	out, err := New[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(m.At(i, j), i, j)
		}
	}
	return out, nil
}
