package feature

import (
	"errors"
	"math"
	"testing"

	"github.com/banshee-data/sightline/semerr"
)

func mustDescriptor(t *testing.T, m Metric, vec ...float32) Descriptor {
	t.Helper()
	d, err := NewDescriptor(vec, m)
	if err != nil {
		t.Fatalf("NewDescriptor(%v, %s) failed: %v", vec, m, err)
	}
	return d
}

func TestNewDescriptor_Valid(t *testing.T) {
	d := mustDescriptor(t, L2, 0.5, -1, 2)
	if d.Dim() != 3 {
		t.Errorf("Dim = %d, want 3", d.Dim())
	}
	if d.Metric() != L2 {
		t.Errorf("Metric = %s, want l2", d.Metric())
	}
	if v := d.Vector(); len(v) != 3 || v[1] != -1 {
		t.Errorf("Vector = %v", v)
	}
}

func TestNewDescriptor_RejectsBinaryAndUnknownMetrics(t *testing.T) {
	for _, m := range []Metric{Hamming, Metric("manhattan"), Metric("")} {
		_, err := NewDescriptor([]float32{1, 2}, m)
		if err == nil {
			t.Errorf("metric %q accepted for a float descriptor", m)
			continue
		}
		var me *semerr.MetricError
		if !errors.As(err, &me) {
			t.Errorf("error type for %q = %T, want *semerr.MetricError", m, err)
			continue
		}
		if me.Requested != string(m) || me.Declared != "" {
			t.Errorf("MetricError = %+v", me)
		}
	}
}

func TestNewDescriptor_RejectsEmptyVector(t *testing.T) {
	_, err := NewDescriptor(nil, L2)
	var se *semerr.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *semerr.ShapeError", err)
	}
}

func TestDistance_L2(t *testing.T) {
	a := mustDescriptor(t, L2, 0, 0)
	b := mustDescriptor(t, L2, 3, 4)
	got, err := Distance(a, b, L2)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if got != 5 {
		t.Errorf("L2 distance = %g, want 5", got)
	}
	// Symmetric, and zero against itself.
	if d, _ := Distance(b, a, L2); d != 5 {
		t.Errorf("reversed L2 distance = %g, want 5", d)
	}
	if d, _ := Distance(a, a, L2); d != 0 {
		t.Errorf("self distance = %g, want 0", d)
	}
}

func TestDistance_Cosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 1},
		{"parallel", []float32{1, 0}, []float32{2, 0}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustDescriptor(t, Cosine, tc.a...)
			b := mustDescriptor(t, Cosine, tc.b...)
			got, err := Distance(a, b, Cosine)
			if err != nil {
				t.Fatalf("Distance failed: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("cosine distance = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestDistance_CosineZeroNormIsNaN(t *testing.T) {
	a := mustDescriptor(t, Cosine, 0, 0)
	b := mustDescriptor(t, Cosine, 1, 0)
	got, err := Distance(a, b, Cosine)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("zero-norm cosine distance = %g, want NaN", got)
	}
}

func TestDistance_MetricGate(t *testing.T) {
	a := mustDescriptor(t, L2, 1, 2)
	b := mustDescriptor(t, L2, 3, 4)

	_, err := Distance(a, b, Cosine)
	var me *semerr.MetricError
	if !errors.As(err, &me) {
		t.Fatalf("error type = %T, want *semerr.MetricError", err)
	}
	if me.Requested != "cosine" || me.Declared != "l2" {
		t.Errorf("MetricError = %+v", me)
	}

	// The second descriptor is gated too.
	c := mustDescriptor(t, Cosine, 1, 2)
	if _, err := Distance(c, b, Cosine); !errors.As(err, &me) {
		t.Fatalf("mismatched second descriptor: error = %v", err)
	}
	if me.Declared != "l2" {
		t.Errorf("MetricError.Declared = %q, want l2", me.Declared)
	}
}

func TestDistance_DimensionGate(t *testing.T) {
	a := mustDescriptor(t, L2, 1, 2, 3)
	b := mustDescriptor(t, L2, 1, 2, 3, 4)
	_, err := Distance(a, b, L2)
	var de *semerr.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *semerr.DimensionError", err)
	}
	if de.Got != 4 || de.Want != 3 {
		t.Errorf("DimensionError = %+v, want got 4 want 3", de)
	}
}

func TestBinaryDescriptor(t *testing.T) {
	d, err := NewBinaryDescriptor([]byte{0xFF, 0x00, 0xA5})
	if err != nil {
		t.Fatalf("NewBinaryDescriptor failed: %v", err)
	}
	if d.Dim() != 24 {
		t.Errorf("Dim = %d, want 24", d.Dim())
	}
	if d.Metric() != Hamming {
		t.Errorf("Metric = %s, want hamming", d.Metric())
	}
	if _, err := NewBinaryDescriptor(nil); err == nil {
		t.Error("empty binary descriptor accepted")
	}
}

func TestHammingDistance(t *testing.T) {
	a, _ := NewBinaryDescriptor([]byte{0xFF, 0x00})
	b, _ := NewBinaryDescriptor([]byte{0x0F, 0x01})

	got, err := HammingDistance(a, b)
	if err != nil {
		t.Fatalf("HammingDistance failed: %v", err)
	}
	if got != 5 {
		t.Errorf("distance = %d, want 5", got)
	}
	if d, _ := HammingDistance(a, a); d != 0 {
		t.Errorf("self distance = %d, want 0", d)
	}
}

func TestHammingDistance_LengthGate(t *testing.T) {
	a, _ := NewBinaryDescriptor([]byte{0xFF})
	b, _ := NewBinaryDescriptor([]byte{0xFF, 0x00})
	_, err := HammingDistance(a, b)
	var de *semerr.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *semerr.DimensionError", err)
	}
	if de.Got != 16 || de.Want != 8 {
		t.Errorf("DimensionError = %+v, want got 16 want 8", de)
	}
}
