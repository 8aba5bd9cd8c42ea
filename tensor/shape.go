package tensor

import (
	"fmt"

	"github.com/banshee-data/sightline/semerr"
)

// Scalar constrains the element types a tensor can hold.
type Scalar interface {
	~uint8 | ~uint16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Layout is the rule mapping multi-axis indices to a linear memory offset.
type Layout int

const (
	// RowMajor places the last axis innermost (fastest-varying). This is
	// the default layout everywhere in this module.
	RowMajor Layout = iota
	// ColMajor places the first axis innermost.
	ColMajor
)

// String returns the string representation of Layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape is the per-axis extent of a tensor. Axis 0 is the outermost
// (slowest-varying) axis under RowMajor.
type Shape []int

// NewShape validates dims and returns them as a Shape. Every dimension must
// be strictly positive.
func NewShape(dims ...int) (Shape, error) {
	if err := checkShape(dims); err != nil {
		return nil, err
	}
	s := make(Shape, len(dims))
	copy(s, dims)
	return s, nil
}

// checkShape reports the first non-positive dimension, if any.
func checkShape(dims []int) error {
	for i, d := range dims {
		if d <= 0 {
			return &semerr.ShapeError{Axis: i, Dim: d, Shape: cloneInts(dims)}
		}
	}
	return nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Elems returns the total element count (product of all dimensions).
func (s Shape) Elems() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Equal reports whether two shapes have identical rank and dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// String formats the shape as e.g. "[480 640 3]".
func (s Shape) String() string { return fmt.Sprintf("%v", []int(s)) }

// CanonicalStrides computes the strides implied by shape and layout.
// RowMajor: the last axis has stride 1. ColMajor: the first axis has
// stride 1. The result is empty for a rank-0 shape.
func CanonicalStrides(shape Shape, layout Layout) []int {
	strides := make([]int, len(shape))
	switch layout {
	case ColMajor:
		acc := 1
		for i := 0; i < len(shape); i++ {
			strides[i] = acc
			acc *= shape[i]
		}
	default: // RowMajor
		acc := 1
		for i := len(shape) - 1; i >= 0; i-- {
			strides[i] = acc
			acc *= shape[i]
		}
	}
	return strides
}

// IsContiguous reports whether strides equal the canonical strides for the
// shape and layout exactly. There is no tolerance: a single perturbed stride
// makes the tensor non-contiguous.
func IsContiguous(shape Shape, strides []int, layout Layout) bool {
	if len(strides) != len(shape) {
		return false
	}
	want := CanonicalStrides(shape, layout)
	for i := range want {
		if strides[i] != want[i] {
			return false
		}
	}
	return true
}

// checkStrides validates stride count, sign, and the storage span they
// imply. Stride 0 is permitted (a read-only broadcast alias); negative
// strides are not representable in checked views.
func checkStrides(storageLen int, shape Shape, strides []int) error {
	if len(strides) != len(shape) {
		return &semerr.StrideError{
			Strides: cloneInts(strides),
			Shape:   cloneInts(shape),
			Detail:  fmt.Sprintf("stride count %d does not match rank %d", len(strides), len(shape)),
		}
	}
	for i, st := range strides {
		if st < 0 {
			return &semerr.StrideError{
				Strides: cloneInts(strides),
				Shape:   cloneInts(shape),
				Detail:  fmt.Sprintf("negative stride %d at axis %d", st, i),
			}
		}
	}
	// Largest reachable offset is at the maximum index along every axis.
	span := 1
	for i := range shape {
		span += (shape[i] - 1) * strides[i]
	}
	if span > storageLen {
		return &semerr.StrideError{
			Strides: cloneInts(strides),
			Shape:   cloneInts(shape),
			Detail:  fmt.Sprintf("span %d exceeds storage length %d", span, storageLen),
		}
	}
	return nil
}

func cloneInts(v []int) []int {
	c := make([]int, len(v))
	copy(c, v)
	return c
}
