package feature

import (
	"math"
	"math/bits"

	"github.com/banshee-data/sightline/semerr"
)

// Descriptor is a float feature vector with a declared metric. The vector
// is stored as given; nothing here normalizes it, and its dimensionality
// is fixed at construction. Bit-string descriptors live in
// BinaryDescriptor instead.
type Descriptor struct {
	vec    []float32
	metric Metric
}

// NewDescriptor validates that m is a float-vector metric (L2 or Cosine)
// and that the vector is non-empty, then adopts vec. The caller must not
// mutate vec afterwards.
func NewDescriptor(vec []float32, m Metric) (Descriptor, error) {
	if m != L2 && m != Cosine {
		return Descriptor{}, &semerr.MetricError{Requested: string(m)}
	}
	if len(vec) == 0 {
		return Descriptor{}, &semerr.ShapeError{Axis: 0, Dim: 0, Shape: []int{0}}
	}
	return Descriptor{vec: vec, metric: m}, nil
}

// Dim returns the vector length.
func (d Descriptor) Dim() int { return len(d.vec) }

// Metric returns the declared metric.
func (d Descriptor) Metric() Metric { return d.metric }

// Vector returns the backing vector. It aliases the descriptor's storage
// and must be treated as read-only.
func (d Descriptor) Vector() []float32 { return d.vec }

// Distance computes the distance between two descriptors under the
// requested metric. The metric must equal what both descriptors declare
// (MetricError) and their dimensionalities must agree (DimensionError);
// nothing is computed otherwise. Accumulation is float64.
func Distance(a, b Descriptor, m Metric) (float64, error) {
	if m != a.metric {
		return 0, &semerr.MetricError{Requested: string(m), Declared: string(a.metric)}
	}
	if m != b.metric {
		return 0, &semerr.MetricError{Requested: string(m), Declared: string(b.metric)}
	}
	if len(a.vec) != len(b.vec) {
		return 0, &semerr.DimensionError{Got: len(b.vec), Want: len(a.vec)}
	}
	switch m {
	case L2:
		return l2Distance(a.vec, b.vec), nil
	case Cosine:
		return cosineDistance(a.vec, b.vec), nil
	}
	// NewDescriptor pins the metric to L2 or Cosine; only zero-value
	// descriptors reach here.
	return 0, &semerr.MetricError{Requested: string(m)}
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// cosineDistance is 1 - cos(a, b). A zero-norm input yields NaN; vectors
// are compared as given, never normalized on the way in.
func cosineDistance(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	return 1 - dot/math.Sqrt(na*nb)
}

// BinaryDescriptor is a packed bit-string descriptor (BRIEF, ORB and kin).
// The type itself declares the metric: binary descriptors compare under
// Hamming distance and nothing else. Dimensionality counts bits.
type BinaryDescriptor struct {
	bits []byte
}

// NewBinaryDescriptor adopts the packed bytes; the caller must not mutate
// them afterwards. An empty descriptor is rejected.
func NewBinaryDescriptor(b []byte) (BinaryDescriptor, error) {
	if len(b) == 0 {
		return BinaryDescriptor{}, &semerr.ShapeError{Axis: 0, Dim: 0, Shape: []int{0}}
	}
	return BinaryDescriptor{bits: b}, nil
}

// Dim returns the descriptor length in bits.
func (d BinaryDescriptor) Dim() int { return 8 * len(d.bits) }

// Metric returns Hamming.
func (d BinaryDescriptor) Metric() Metric { return Hamming }

// Bytes returns the packed bits. It aliases the descriptor's storage and
// must be treated as read-only.
func (d BinaryDescriptor) Bytes() []byte { return d.bits }

// HammingDistance counts differing bits between two binary descriptors of
// equal dimensionality; unequal lengths are a DimensionError.
func HammingDistance(a, b BinaryDescriptor) (int, error) {
	if len(a.bits) != len(b.bits) {
		return 0, &semerr.DimensionError{Got: b.Dim(), Want: a.Dim()}
	}
	n := 0
	for i := range a.bits {
		n += bits.OnesCount8(a.bits[i] ^ b.bits[i])
	}
	return n, nil
}
