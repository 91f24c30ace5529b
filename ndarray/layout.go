package ndarray

import "fmt"

// Order classifies a stride sequence by the memory layout it implies. It is
// fixed at construction and only steers traversal nesting, never correctness.
type Order int

const (
	// ColumnMajor means stride magnitudes are non-decreasing across axes
	// (axis 0 fastest-varying). This is the canonical layout.
	ColumnMajor Order = iota
	// RowMajor means stride magnitudes are non-increasing across axes
	// (last axis fastest-varying).
	RowMajor
	// Nonspecific means neither monotonicity holds.
	Nonspecific
)

func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "nonspecific"
	}
}

// inferOrder classifies strides by magnitude in original axis order.
// Column-major wins when both monotonicities hold (rank <= 1, equal strides).
func inferOrder(strides []int) Order {
	nondec, noninc := true, true
	for k := 1; k < len(strides); k++ {
		a, b := absInt(strides[k-1]), absInt(strides[k])
		if a > b {
			nondec = false
		}
		if a < b {
			noninc = false
		}
	}
	if nondec {
		return ColumnMajor
	}
	if noninc {
		return RowMajor
	}
	return Nonspecific
}

// spanBounds accumulates the inclusive linear-index interval [imin, imax]
// reachable by the descriptor, seeded from offset. Negative strides extend
// imin downward, positive strides extend imax upward.
func spanBounds(offset int, shape Shape, strides []int) (imin, imax int) {
	imin, imax = offset, offset
	for k, d := range shape {
		ext := (d - 1) * strides[k]
		if ext < 0 {
			imin += ext
		} else {
			imax += ext
		}
	}
	return imin, imax
}

// checkBounds validates the descriptor against a buffer of n slots.
func checkBounds(offset int, shape Shape, strides []int, n int) error {
	imin, imax := spanBounds(offset, shape, strides)
	if imin < 0 || imax >= n {
		return fmt.Errorf("%w: span [%d, %d] over buffer of %d", ErrViewOutOfBounds, imin, imax, n)
	}
	return nil
}

// isCanonical reports whether the descriptor addresses a buffer of n slots as
// one contiguous canonical column-major block covering it exactly.
func isCanonical(offset int, shape Shape, strides []int, n int) bool {
	if offset != 0 || shape.NumElements() != n {
		return false
	}
	acc := 1
	for k, d := range shape {
		if strides[k] != acc {
			return false
		}
		acc *= d
	}
	return true
}

// forEach visits the linear buffer position of every element exactly once.
// Row-major descriptors are walked with the last axis innermost; everything
// else with axis 0 innermost. The visited set never depends on the nesting.
func forEach(shape Shape, strides []int, offset int, order Order, fn func(pos int)) {
	r := len(shape)
	if r == 0 {
		fn(offset)
		return
	}
	var axes [MaxRank]int
	for i := 0; i < r; i++ {
		if order == RowMajor {
			axes[i] = r - 1 - i
		} else {
			axes[i] = i
		}
	}
	var idx [MaxRank]int
	pos := offset
	n := shape.NumElements()
	for c := 0; c < n; c++ {
		fn(pos)
		for i := 0; i < r; i++ {
			ax := axes[i]
			idx[ax]++
			pos += strides[ax]
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
			pos -= shape[ax] * strides[ax]
		}
	}
}

// forEachPair walks two descriptors of the same shape in index lockstep, so
// fn always receives positions of the same logical element. Nesting follows
// the first descriptor's order.
func forEachPair(shape Shape, aOff int, aStrides []int, aOrder Order, bOff int, bStrides []int, fn func(pa, pb int)) {
	r := len(shape)
	if r == 0 {
		fn(aOff, bOff)
		return
	}
	var axes [MaxRank]int
	for i := 0; i < r; i++ {
		if aOrder == RowMajor {
			axes[i] = r - 1 - i
		} else {
			axes[i] = i
		}
	}
	var idx [MaxRank]int
	pa, pb := aOff, bOff
	n := shape.NumElements()
	for c := 0; c < n; c++ {
		fn(pa, pb)
		for i := 0; i < r; i++ {
			ax := axes[i]
			idx[ax]++
			pa += aStrides[ax]
			pb += bStrides[ax]
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
			pa -= shape[ax] * aStrides[ax]
			pb -= shape[ax] * bStrides[ax]
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
