package arrowio

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/tensor"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/longbow-ndarray/ndarray"
)

// roundTripKind materializes a filled 2x2 array as an Arrow tensor and reads
// it back, checking kind, shape and values survive.
func roundTripKind[T ndarray.Number](t *testing.T, mem memory.Allocator, v T) {
	t.Helper()
	a, err := ndarray.New[T](2, 2)
	require.NoError(t, err)
	a.Fill(v)

	tsr, err := ToTensor(mem, a)
	require.NoError(t, err)
	defer tsr.Release()

	back, err := FromTensor(tsr)
	require.NoError(t, err)
	b, ok := back.(*ndarray.Dense[T])
	require.True(t, ok)
	require.Equal(t, a.Shape(), b.Shape())
	require.Equal(t, v, b.Get(1, 1))
}

func TestToTensor(t *testing.T) {
	mem := memory.NewGoAllocator()

	t.Run("Float64RoundTrip", func(t *testing.T) {
		a, err := ndarray.Wrap([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
		require.NoError(t, err)

		tsr, err := ToTensor(mem, a)
		require.NoError(t, err)
		defer tsr.Release()
		require.Equal(t, []int64{2, 3}, tsr.Shape())
		require.Equal(t, 6, tsr.Len())

		back, err := FromTensor(tsr)
		require.NoError(t, err)
		require.Equal(t, ndarray.Float64, back.Kind())
		b, ok := back.(*ndarray.Dense[float64])
		require.True(t, ok)
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				require.Equal(t, a.Get(i, j), b.Get(i, j))
			}
		}
	})

	t.Run("AllKindsRoundTrip", func(t *testing.T) {
		t.Run("int8", func(t *testing.T) { roundTripKind(t, mem, int8(-3)) })
		t.Run("int16", func(t *testing.T) { roundTripKind(t, mem, int16(300)) })
		t.Run("int32", func(t *testing.T) { roundTripKind(t, mem, int32(1<<20)) })
		t.Run("int64", func(t *testing.T) { roundTripKind(t, mem, int64(1<<40)) })
		t.Run("float32", func(t *testing.T) { roundTripKind(t, mem, float32(1.5)) })
		t.Run("float64", func(t *testing.T) { roundTripKind(t, mem, -2.25) })
	})

	t.Run("Int8FromStridedView", func(t *testing.T) {
		buf := []int8{10, 20, 30, 40, 50, 60}
		a, err := ndarray.WrapStrided(buf, 0, []int{3, 1}, 2, 3)
		require.NoError(t, err)

		tsr, err := ToTensor(mem, a)
		require.NoError(t, err)
		defer tsr.Release()

		back, err := FromTensor(tsr)
		require.NoError(t, err)
		b := back.(*ndarray.Dense[int8])
		require.Equal(t, a.Get(1, 2), b.Get(1, 2))
	})

	t.Run("UnsupportedTensorType", func(t *testing.T) {
		bld := array.NewDate32Builder(mem)
		defer bld.Release()
		bld.AppendValues([]arrow.Date32{1, 2, 3, 4}, nil)
		arr := bld.NewArray()
		defer arr.Release()

		tsr := tensor.New(arr.Data(), []int64{2, 2}, nil, nil)
		defer tsr.Release()

		_, err := FromTensor(tsr)
		require.ErrorIs(t, err, ndarray.ErrUnsupportedKind)
	})
}

func TestToRecord(t *testing.T) {
	mem := memory.NewGoAllocator()

	t.Run("RankTwo", func(t *testing.T) {
		a, err := ndarray.New[float64](3, 4)
		require.NoError(t, err)
		a.Fill(1.0)

		rec, err := ToRecord(mem, a)
		require.NoError(t, err)
		defer rec.Release()
		require.Equal(t, int64(3), rec.NumRows())
		require.Equal(t, int64(1), rec.NumCols())

		col := rec.Column(0).(*array.FixedSizeList)
		vals := col.ListValues().(*array.Float64)
		require.Equal(t, 12, vals.Len())
		require.Equal(t, 1.0, vals.Value(0))
	})

	t.Run("RejectsNonMatrix", func(t *testing.T) {
		a, err := ndarray.New[float64](4)
		require.NoError(t, err)
		_, err = ToRecord(mem, a)
		require.ErrorIs(t, err, ndarray.ErrNonConformableShape)
	})
}
