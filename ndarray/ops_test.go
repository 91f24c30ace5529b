package ndarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type counterGen struct{ next int32 }

func (g *counterGen) Next() int32 {
	v := g.next
	g.next++
	return v
}

type sumScanner struct {
	inits int
	total float64
}

func (s *sumScanner) Initialize(v float64) {
	s.inits++
	s.total = v
}

func (s *sumScanner) Update(v float64) { s.total += v }

func TestBulkOps(t *testing.T) {
	t.Run("FillIncrDecrScale", func(t *testing.T) {
		a, err := New[float64](2, 3)
		require.NoError(t, err)
		a.Fill(1.0)
		a.Incr(2.0)
		a.Decr(0.5)
		a.Scale(4.0)
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				require.Equal(t, 10.0, a.Get(i, j))
			}
		}
	})

	t.Run("StridedViewOps", func(t *testing.T) {
		buf := make([]int32, 6)
		a, err := WrapStrided(buf, 0, []int{3, 1}, 2, 3)
		require.NoError(t, err)
		a.Fill(5)
		a.Scale(3)
		require.Equal(t, []int32{15, 15, 15, 15, 15, 15}, buf)
	})

	t.Run("Map", func(t *testing.T) {
		a, err := New[int64](4)
		require.NoError(t, err)
		a.Fill(3)
		a.Map(func(v int64) int64 { return v * v })
		require.Equal(t, int64(9), a.Get(2))
	})

	t.Run("GeneratorFill", func(t *testing.T) {
		a, err := New[int32](2, 2)
		require.NoError(t, err)
		a.FillFrom(&counterGen{})
		// Column-major traversal: axis 0 fastest.
		require.Equal(t, int32(0), a.Get(0, 0))
		require.Equal(t, int32(1), a.Get(1, 0))
		require.Equal(t, int32(2), a.Get(0, 1))
		require.Equal(t, int32(3), a.Get(1, 1))
	})

	t.Run("ScanSeedsFromFirstElement", func(t *testing.T) {
		a, err := New[float64](3, 3)
		require.NoError(t, err)
		a.Fill(2.0)
		var s sumScanner
		a.Scan(&s)
		require.Equal(t, 1, s.inits)
		require.Equal(t, 18.0, s.total)
	})

	t.Run("ScanOnRowMajorView", func(t *testing.T) {
		buf := []float64{1, 2, 3, 4, 5, 6}
		a, err := WrapStrided(buf, 0, []int{3, 1}, 2, 3)
		require.NoError(t, err)
		var s sumScanner
		a.Scan(&s)
		require.Equal(t, 1, s.inits)
		require.Equal(t, 21.0, s.total)
	})
}

func TestReductions(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		a, err := Wrap([]float64{3, -1, 4, 1.5}, 4)
		require.NoError(t, err)
		require.Equal(t, 7.5, a.Sum())
		require.Equal(t, -1.0, a.Min())
		require.Equal(t, 4.0, a.Max())
		lo, hi := a.MinMax()
		require.Equal(t, -1.0, lo)
		require.Equal(t, 4.0, hi)
		require.InDelta(t, 1.875, a.Average(), 1e-12)
	})

	t.Run("Unsigned8BitReductions", func(t *testing.T) {
		// Bit patterns 0xFF and 0x01. Reductions read 8-bit elements as
		// unsigned; element access keeps them signed.
		a, err := Wrap([]int8{-1, 1}, 2)
		require.NoError(t, err)
		require.Equal(t, 1.0, a.Min())
		require.Equal(t, 255.0, a.Max())
		require.Equal(t, 256.0, a.Sum())
		require.Equal(t, 128.0, a.Average())
		require.Equal(t, int8(-1), a.Get(0))
	})

	t.Run("Signed8BitArithmetic", func(t *testing.T) {
		a, err := Wrap([]int8{-1, 1}, 2)
		require.NoError(t, err)
		a.Incr(1)
		require.Equal(t, int8(0), a.Get(0))
		require.Equal(t, int8(2), a.Get(1))
	})

	t.Run("StridedReduction", func(t *testing.T) {
		buf := []int32{10, 20, 30, 40, 50, 60}
		a, err := WrapStrided(buf, 1, []int{2}, 3) // 20, 40, 60
		require.NoError(t, err)
		require.Equal(t, 120.0, a.Sum())
		require.Equal(t, 20.0, a.Min())
		require.Equal(t, 60.0, a.Max())
	})
}

func TestAssign(t *testing.T) {
	t.Run("SameKind", func(t *testing.T) {
		src, err := New[float64](2, 3)
		require.NoError(t, err)
		src.Fill(7.0)
		dst, err := New[float64](2, 3)
		require.NoError(t, err)
		require.NoError(t, Assign(dst, src))
		require.Equal(t, 7.0, dst.Get(1, 2))
	})

	t.Run("CrossKindConverts", func(t *testing.T) {
		src, err := Wrap([]float64{1.9, -2.7, 3.1, 4.0}, 4)
		require.NoError(t, err)
		dst, err := New[int32](4)
		require.NoError(t, err)
		require.NoError(t, Assign(dst, src))
		require.Equal(t, []int32{1, -2, 3, 4}, dst.Flatten(false))
	})

	t.Run("NonConformable", func(t *testing.T) {
		src, err := New[float64](2, 3)
		require.NoError(t, err)
		dst, err := New[float64](3, 2)
		require.NoError(t, err)
		require.ErrorIs(t, Assign(dst, src), ErrNonConformableShape)
	})

	t.Run("NoBroadcasting", func(t *testing.T) {
		src, err := New[float64](3)
		require.NoError(t, err)
		dst, err := New[float64](3, 3)
		require.NoError(t, err)
		require.ErrorIs(t, Assign(dst, src), ErrNonConformableShape)
	})

	t.Run("MixedLayouts", func(t *testing.T) {
		// Row-major source into column-major destination pairs by index,
		// not by buffer position.
		buf := []int32{1, 2, 3, 4, 5, 6}
		src, err := WrapStrided(buf, 0, []int{3, 1}, 2, 3)
		require.NoError(t, err)
		dst, err := New[int32](2, 3)
		require.NoError(t, err)
		require.NoError(t, Assign(dst, src))
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				require.Equal(t, src.Get(i, j), dst.Get(i, j))
			}
		}
	})

	t.Run("ErasedDispatch", func(t *testing.T) {
		src, err := Wrap([]int16{300, -5}, 2)
		require.NoError(t, err)
		dst, err := New[int8](2)
		require.NoError(t, err)
		require.NoError(t, AssignArray(dst, src))
		// 300 narrows to its low byte.
		require.Equal(t, int8(44), dst.Get(0))
		require.Equal(t, int8(-5), dst.Get(1))
	})

	t.Run("CopyFromFlatBuffer", func(t *testing.T) {
		a, err := New[float32](2, 2)
		require.NoError(t, err)
		require.NoError(t, a.CopyFrom([]float32{1, 2, 3, 4}))
		// Canonical column-major order.
		require.Equal(t, float32(2), a.Get(1, 0))
		require.Equal(t, float32(3), a.Get(0, 1))
		require.ErrorIs(t, a.CopyFrom([]float32{1, 2}), ErrNonConformableShape)
	})
}

func TestEndToEndScenario(t *testing.T) {
	a, err := New[float64](3, 4)
	require.NoError(t, err)
	a.Fill(1.0)

	col, err := a.Slice(1, -1)
	require.NoError(t, err)
	require.Equal(t, 1, col.Rank())
	require.Equal(t, 3, col.Len())

	col.Scale(2.0)

	for i := 0; i < 3; i++ {
		require.Equal(t, 2.0, a.Get(i, 3))
		for j := 0; j < 3; j++ {
			require.Equal(t, 1.0, a.Get(i, j))
		}
	}
}
