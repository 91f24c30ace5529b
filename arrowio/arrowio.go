// Package arrowio converts ndarray values to and from Apache Arrow tensors
// and record batches for interchange with columnar consumers.
package arrowio

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/tensor"

	"github.com/23skdu/longbow-ndarray/ndarray"
)

// ArrowType maps an element kind to its Arrow data type.
func ArrowType(k ndarray.Kind) (arrow.DataType, error) {
	switch k {
	case ndarray.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case ndarray.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case ndarray.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case ndarray.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case ndarray.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case ndarray.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ndarray.ErrUnsupportedKind, k)
	}
}

// ToTensor materializes the array as an Arrow tensor in canonical
// column-major layout. The tensor owns a copy of the data.
func ToTensor[T ndarray.Number](mem memory.Allocator, a *ndarray.Dense[T]) (tensor.Interface, error) {
	flat := a.Flatten(false)

	var arr arrow.Array
	switch v := any(flat).(type) {
	case []int8:
		b := array.NewInt8Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	case []int16:
		b := array.NewInt16Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	case []int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	case []int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	case []float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	case []float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.AppendValues(v, nil)
		arr = b.NewArray()
	default:
		return nil, fmt.Errorf("%w: %T", ndarray.ErrUnsupportedKind, flat)
	}
	defer arr.Release()

	kind := ndarray.KindOf[T]()
	shape := a.Shape()
	shape64 := make([]int64, len(shape))
	strides64 := make([]int64, len(shape))
	acc := int64(kind.Size())
	for k, d := range shape {
		shape64[k] = int64(d)
		strides64[k] = acc
		acc *= int64(d)
	}
	return tensor.New(arr.Data(), shape64, strides64, nil), nil
}

// FromTensor copies an Arrow tensor into a new owned array of the matching
// kind. Non-numeric tensor types fail with ErrUnsupportedKind.
func FromTensor(t tensor.Interface) (ndarray.NDArray, error) {
	switch tt := t.(type) {
	case *tensor.Int8:
		return fromValues(tt.Int8Values(), tt.Shape(), tt.Strides())
	case *tensor.Int16:
		return fromValues(tt.Int16Values(), tt.Shape(), tt.Strides())
	case *tensor.Int32:
		return fromValues(tt.Int32Values(), tt.Shape(), tt.Strides())
	case *tensor.Int64:
		return fromValues(tt.Int64Values(), tt.Shape(), tt.Strides())
	case *tensor.Float32:
		return fromValues(tt.Float32Values(), tt.Shape(), tt.Strides())
	case *tensor.Float64:
		return fromValues(tt.Float64Values(), tt.Shape(), tt.Strides())
	default:
		return nil, fmt.Errorf("%w: arrow tensor %s", ndarray.ErrUnsupportedKind, t.DataType().Name())
	}
}

func fromValues[T ndarray.Number](vals []T, shape64, strides64 []int64) (*ndarray.Dense[T], error) {
	size := int64(ndarray.KindOf[T]().Size())
	dims := make([]int, len(shape64))
	strides := make([]int, len(strides64))
	for k := range shape64 {
		dims[k] = int(shape64[k])
		strides[k] = int(strides64[k] / size)
	}
	view, err := ndarray.WrapStrided(vals, 0, strides, dims...)
	if err != nil {
		return nil, err
	}
	out, err := ndarray.New[T](dims...)
	if err != nil {
		return nil, err
	}
	if err := ndarray.Assign(out, view); err != nil {
		return nil, err
	}
	return out, nil
}

// ToRecord builds a record batch with one fixed-size-list column named
// "values", one row per leading-axis slice. The array must be rank 2.
func ToRecord(mem memory.Allocator, a *ndarray.Dense[float64]) (arrow.RecordBatch, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("%w: rank %d, need 2", ndarray.ErrNonConformableShape, a.Rank())
	}
	rows, cols := a.Dim(0), a.Dim(1)

	schema := arrow.NewSchema(
		[]arrow.Field{
			{Name: "values", Type: arrow.FixedSizeListOf(int32(cols), arrow.PrimitiveTypes.Float64)},
		},
		nil,
	)

	listBuilder := array.NewFixedSizeListBuilder(mem, int32(cols), arrow.PrimitiveTypes.Float64)
	defer listBuilder.Release()
	valueBuilder := listBuilder.ValueBuilder().(*array.Float64Builder)

	for i := 0; i < rows; i++ {
		listBuilder.Append(true)
		for j := 0; j < cols; j++ {
			valueBuilder.Append(a.Get(i, j))
		}
	}

	col := listBuilder.NewArray()
	defer col.Release()

	return array.NewRecordBatch(schema, []arrow.Array{col}, int64(rows)), nil
}
