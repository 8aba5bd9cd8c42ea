package tensor

import (
	"github.com/banshee-data/sightline/semerr"
)

// Dense is an owning N-axis container with canonical strides for its
// layout. It is the single writer entry point for its storage: all
// mutation goes through the MutView it hands out. Read access is via View.
type Dense[T Scalar] struct {
	data    []T
	shape   Shape
	strides []int
	layout  Layout
	axes    []Axis // nil until tagged
}

// NewDense allocates a zeroed tensor with the given shape and layout.
// Fails with ShapeError if any dimension is not strictly positive.
func NewDense[T Scalar](shape Shape, layout Layout) (*Dense[T], error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	s := shape.Clone()
	return &Dense[T]{
		data:    make([]T, s.Elems()),
		shape:   s,
		strides: CanonicalStrides(s, layout),
		layout:  layout,
	}, nil
}

// NewDenseOf adopts data as the tensor's storage (no copy; the caller must
// not retain other writable references). Fails with ShapeError for a
// non-positive dimension or SizeError when the data length does not equal
// the shape's element count.
func NewDenseOf[T Scalar](data []T, shape Shape, layout Layout) (*Dense[T], error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	s := shape.Clone()
	if len(data) != s.Elems() {
		return nil, &semerr.SizeError{Len: len(data), Want: s.Elems(), Shape: cloneInts(s)}
	}
	return &Dense[T]{
		data:    data,
		shape:   s,
		strides: CanonicalStrides(s, layout),
		layout:  layout,
	}, nil
}

// Shape returns a copy of the tensor's shape.
func (d *Dense[T]) Shape() Shape { return d.shape.Clone() }

// Strides returns a copy of the tensor's strides. Dense strides are always
// canonical for the shape and layout.
func (d *Dense[T]) Strides() []int { return cloneInts(d.strides) }

// Layout returns the tensor's layout.
func (d *Dense[T]) Layout() Layout { return d.layout }

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int { return d.shape.Rank() }

// At returns the element at the given multi-axis index. Axis 0 is the
// outermost (slowest-varying) axis and axis N-1 the innermost, irrespective
// of any attached markers. Panics if the index arity or bounds are wrong;
// index arithmetic is programmer territory, like slice indexing.
func (d *Dense[T]) At(idx ...int) T { return d.View().At(idx...) }

// Tag attaches axis markers to the tensor. The marker list length must
// equal the rank (MarkerError otherwise). Markers are always attached
// explicitly; nothing in this package infers them from shape.
func (d *Dense[T]) Tag(axes ...Axis) error {
	if len(axes) != d.shape.Rank() {
		return &semerr.MarkerError{Markers: len(axes), Rank: d.shape.Rank()}
	}
	d.axes = cloneAxes(axes)
	return nil
}

// Axes returns a copy of the attached axis markers, or nil when untagged.
func (d *Dense[T]) Axes() []Axis { return cloneAxes(d.axes) }

// View returns a read-only view of the whole tensor, markers included.
// Views alias the tensor's storage; any number may coexist.
func (d *Dense[T]) View() View[T] {
	return View[T]{
		data:    d.data,
		shape:   d.shape,
		strides: d.strides,
		layout:  d.layout,
		axes:    d.axes,
	}
}

// MutView returns the explicitly-named mutable view of the whole tensor.
// The caller must hold exclusive access to the storage for the lifetime of
// the returned view: no other MutView and no concurrent reads through
// Views. The package does not police this with locks; violating it is a
// data race.
func (d *Dense[T]) MutView() MutView[T] {
	return MutView[T]{View[T]{
		data:    d.data,
		shape:   d.shape,
		strides: d.strides,
		layout:  d.layout,
		axes:    d.axes,
	}}
}
