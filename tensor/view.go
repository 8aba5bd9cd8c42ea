package tensor

import (
	"github.com/banshee-data/sightline/semerr"
)

// View is a read-only window onto tensor storage: a base slice whose
// element 0 is the view origin, a shape, and non-negative strides. Views
// alias storage explicitly and never copy; any number may coexist.
type View[T Scalar] struct {
	data    []T
	shape   Shape
	strides []int
	layout  Layout
	axes    []Axis
}

// NewView is the safe view constructor. It validates shape positivity and
// stride/storage consistency: stride count equals rank, strides are
// non-negative, and the maximum reachable offset lies inside data.
func NewView[T Scalar](data []T, shape Shape, strides []int) (View[T], error) {
	if err := checkShape(shape); err != nil {
		return View[T]{}, err
	}
	if err := checkStrides(len(data), shape, strides); err != nil {
		return View[T]{}, err
	}
	return View[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: cloneInts(strides),
		layout:  RowMajor,
	}, nil
}

// NewViewUnchecked builds a view without validating shape or strides. The
// caller guarantees their consistency with the storage; a broken guarantee
// surfaces as an out-of-range panic on access. Use NewView unless the
// checks have provably already run.
func NewViewUnchecked[T Scalar](data []T, shape Shape, strides []int) View[T] {
	return View[T]{
		data:    data,
		shape:   shape,
		strides: strides,
		layout:  RowMajor,
	}
}

// Shape returns a copy of the view's shape.
func (v View[T]) Shape() Shape { return v.shape.Clone() }

// Strides returns a copy of the view's strides.
func (v View[T]) Strides() []int { return cloneInts(v.strides) }

// Layout returns the layout contiguity is judged against.
func (v View[T]) Layout() Layout { return v.layout }

// Rank returns the number of axes.
func (v View[T]) Rank() int { return v.shape.Rank() }

// Axes returns a copy of the view's axis markers, or nil when untagged.
func (v View[T]) Axes() []Axis { return cloneAxes(v.axes) }

// WithAxes returns a copy of the view with the given markers attached.
// The marker count must equal the rank (MarkerError otherwise).
func (v View[T]) WithAxes(axes ...Axis) (View[T], error) {
	if len(axes) != v.shape.Rank() {
		return View[T]{}, &semerr.MarkerError{Markers: len(axes), Rank: v.shape.Rank()}
	}
	out := v
	out.axes = cloneAxes(axes)
	return out, nil
}

// At returns the element at the given multi-axis index. Axis 0 is the
// outermost (slowest-varying) axis and axis N-1 the innermost, regardless
// of attached markers. Panics on wrong arity or out-of-range indices.
func (v View[T]) At(idx ...int) T {
	return v.data[v.offset(idx)]
}

// offset maps a multi-axis index to a linear storage offset.
func (v View[T]) offset(idx []int) int {
	if len(idx) != len(v.shape) {
		panic("tensor: index arity does not match rank")
	}
	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= v.shape[i] {
			panic("tensor: index out of range")
		}
		off += ix * v.strides[i]
	}
	return off
}

// Contiguous reports whether the view's strides are exactly canonical for
// its shape and layout.
func (v View[T]) Contiguous() bool {
	return IsContiguous(v.shape, v.strides, v.layout)
}

// AsContiguous returns the view as a ContiguousView, or ContiguityError
// (carrying actual and canonical strides) when the strides are not exactly
// canonical. It never copies to satisfy the request.
func (v View[T]) AsContiguous() (ContiguousView[T], error) {
	if !v.Contiguous() {
		return ContiguousView[T]{}, &semerr.ContiguityError{
			Strides: cloneInts(v.strides),
			Want:    CanonicalStrides(v.shape, v.layout),
		}
	}
	return ContiguousView[T]{v}, nil
}

// ContiguousView is a View whose strides are proven canonical. Linear
// storage access exists only here, so reinterpreting a strided view as flat
// memory is unrepresentable.
type ContiguousView[T Scalar] struct {
	View[T]
}

// Data returns the linear storage of the contiguous view, aliasing the
// underlying tensor. Callers must treat it as read-only.
func (c ContiguousView[T]) Data() []T {
	return c.data[:c.shape.Elems()]
}

// MutView is the explicitly-named mutable view. It is obtained only from
// Dense.MutView and requires exclusive access to the storage for its
// lifetime: no other MutView, no concurrent Views. Misuse is a data race,
// not a checked error.
type MutView[T Scalar] struct {
	View[T]
}

// Set writes v at the given multi-axis index. Panics on wrong arity or
// out-of-range indices, like At.
func (m MutView[T]) Set(v T, idx ...int) {
	m.data[m.offset(idx)] = v
}

// Fill writes v to every element of the view.
func (m MutView[T]) Fill(v T) {
	if m.Contiguous() {
		n := m.shape.Elems()
		for i := 0; i < n; i++ {
			m.data[i] = v
		}
		return
	}
	m.fillRec(v, make([]int, m.Rank()), 0)
}

func (m MutView[T]) fillRec(v T, idx []int, axis int) {
	if axis == len(m.shape) {
		m.data[m.offset(idx)] = v
		return
	}
	for i := 0; i < m.shape[axis]; i++ {
		idx[axis] = i
		m.fillRec(v, idx, axis+1)
	}
}

// CopyFrom copies src's elements into the view. Layouts and strides may
// differ; the shapes must be equal. Panics on shape mismatch, matching the
// indexing contract of At and Set.
func (m MutView[T]) CopyFrom(src View[T]) {
	if !m.shape.Equal(src.shape) {
		panic("tensor: CopyFrom shape mismatch " + m.shape.String() + " vs " + src.shape.String())
	}
	if m.Contiguous() && src.Contiguous() && m.layout == src.layout {
		copy(m.data[:m.shape.Elems()], src.data[:src.shape.Elems()])
		return
	}
	m.copyRec(src, make([]int, m.Rank()), 0)
}

func (m MutView[T]) copyRec(src View[T], idx []int, axis int) {
	if axis == len(m.shape) {
		m.data[m.offset(idx)] = src.data[src.offset(idx)]
		return
	}
	for i := 0; i < m.shape[axis]; i++ {
		idx[axis] = i
		m.copyRec(src, idx, axis+1)
	}
}
