package tensor

import (
	"errors"
	"testing"

	"github.com/banshee-data/sightline/semerr"
)

func TestNewView_Valid(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	v, err := NewView(data, Shape{2, 3}, []int{3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	if got := v.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %d, want 6", got)
	}
}

func TestNewView_StrideCountMismatch(t *testing.T) {
	_, err := NewView([]uint8{1, 2, 3, 4, 5, 6}, Shape{2, 3}, []int{3})
	if err == nil {
		t.Fatal("NewView with one stride for rank 2 succeeded")
	}
	var se *semerr.StrideError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *semerr.StrideError", err)
	}
}

func TestNewView_NegativeStride(t *testing.T) {
	_, err := NewView([]uint8{1, 2, 3, 4, 5, 6}, Shape{2, 3}, []int{3, -1})
	if err == nil {
		t.Fatal("NewView with negative stride succeeded")
	}
	var se *semerr.StrideError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *semerr.StrideError", err)
	}
}

func TestNewView_SpanExceedsStorage(t *testing.T) {
	// Max offset = 1*10 + 2*1 = 12, but storage holds only 6 elements.
	_, err := NewView([]uint8{1, 2, 3, 4, 5, 6}, Shape{2, 3}, []int{10, 1})
	if err == nil {
		t.Fatal("NewView spanning past storage succeeded")
	}
	var se *semerr.StrideError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *semerr.StrideError", err)
	}
}

func TestNewView_ZeroStrideBroadcast(t *testing.T) {
	// Stride 0 repeats the same row; legal for read-only views.
	data := []float64{1, 2, 3}
	v, err := NewView(data, Shape{4, 3}, []int{0, 1})
	if err != nil {
		t.Fatalf("NewView with zero stride failed: %v", err)
	}
	for y := 0; y < 4; y++ {
		if got := v.At(y, 1); got != 2 {
			t.Errorf("At(%d,1) = %g, want 2", y, got)
		}
	}
	if v.Contiguous() {
		t.Error("broadcast view reported contiguous")
	}
}

func TestNewViewUnchecked_SkipsValidation(t *testing.T) {
	// Deliberately inconsistent metadata; Unchecked must accept it.
	v := NewViewUnchecked([]uint8{1, 2}, Shape{2, 3}, []int{10, 1})
	if v.Rank() != 2 {
		t.Errorf("Rank = %d, want 2", v.Rank())
	}
}

func TestView_AtPanicsOnArity(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	v, err := NewView(data, Shape{2, 3}, []int{3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("At with wrong arity did not panic")
		}
	}()
	v.At(1)
}

func TestView_AtPanicsOutOfRange(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	v, err := NewView(data, Shape{2, 3}, []int{3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("At out of range did not panic")
		}
	}()
	v.At(0, 3)
}

func TestView_WithAxes(t *testing.T) {
	data := make([]uint8, 480*640*3)
	v, err := NewView(data, Shape{480, 640, 3}, []int{640 * 3, 3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	tagged, err := v.WithAxes(YXC("srgb")...)
	if err != nil {
		t.Fatalf("WithAxes failed: %v", err)
	}
	if !AxesEqual(tagged.Axes(), YXC("srgb")) {
		t.Errorf("axes = %s, want %s", FormatAxes(tagged.Axes()), FormatAxes(YXC("srgb")))
	}
	// The original view stays untagged.
	if v.Axes() != nil {
		t.Error("WithAxes mutated the receiver")
	}
}

func TestAsContiguous_Succeeds(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	v, err := NewView(data, Shape{2, 3}, []int{3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	cv, err := v.AsContiguous()
	if err != nil {
		t.Fatalf("AsContiguous failed on contiguous view: %v", err)
	}
	lin := cv.Data()
	if len(lin) != 6 || lin[0] != 1 || lin[5] != 6 {
		t.Errorf("Data() = %v, want the backing storage in order", lin)
	}
}

func TestAsContiguous_FailsOnStridedView(t *testing.T) {
	// Every other column of a 2x6 buffer: strides {6, 2}.
	data := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	v, err := NewView(data, Shape{2, 3}, []int{6, 2})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	_, err = v.AsContiguous()
	if err == nil {
		t.Fatal("AsContiguous succeeded on strided view")
	}
	var ce *semerr.ContiguityError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *semerr.ContiguityError", err)
	}
	if len(ce.Strides) != 2 || ce.Strides[0] != 6 || ce.Strides[1] != 2 {
		t.Errorf("ContiguityError.Strides = %v, want [6 2]", ce.Strides)
	}
	if len(ce.Want) != 2 || ce.Want[0] != 3 || ce.Want[1] != 1 {
		t.Errorf("ContiguityError.Want = %v, want [3 1]", ce.Want)
	}
	// No silent copy: the strided data is still reachable through At.
	if got := v.At(1, 2); got != 10 {
		t.Errorf("At(1,2) = %d, want 10", got)
	}
}

// ---- MutView ----

func TestMutView_SetWritesThrough(t *testing.T) {
	d, err := NewDense[uint8](Shape{2, 3}, RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	m := d.MutView()
	m.Set(42, 1, 2)
	if got := d.At(1, 2); got != 42 {
		t.Errorf("owner At(1,2) = %d after Set, want 42", got)
	}
}

func TestMutView_Fill(t *testing.T) {
	d, err := NewDense[float32](Shape{3, 4}, RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	d.MutView().Fill(2.5)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := d.At(y, x); got != 2.5 {
				t.Errorf("At(%d,%d) = %g, want 2.5", y, x, got)
			}
		}
	}
}

func TestMutView_CopyFrom(t *testing.T) {
	src, err := NewDenseOf([]uint8{1, 2, 3, 4, 5, 6}, Shape{2, 3}, RowMajor)
	if err != nil {
		t.Fatalf("NewDenseOf failed: %v", err)
	}
	dst, err := NewDense[uint8](Shape{2, 3}, RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	dst.MutView().CopyFrom(src.View())
	if got := dst.At(1, 1); got != 5 {
		t.Errorf("At(1,1) = %d after CopyFrom, want 5", got)
	}
}

func TestMutView_CopyFromPanicsOnShapeMismatch(t *testing.T) {
	src, err := NewDense[uint8](Shape{3, 2}, RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	dst, err := NewDense[uint8](Shape{2, 3}, RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("CopyFrom with mismatched shapes did not panic")
		}
	}()
	dst.MutView().CopyFrom(src.View())
}
