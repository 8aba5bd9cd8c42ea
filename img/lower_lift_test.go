package img

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/sightline/semerr"
	"github.com/banshee-data/sightline/tensor"
)

// End-to-end interchange scenario: a producer hands a 640x480 srgb image to
// a tensor consumer and an image consumer lifts it back unchanged.
func TestLowerLift_Interchange640x480(t *testing.T) {
	data := make([]uint8, 480*640*3)
	for i := range data {
		data[i] = uint8(i * 31)
	}
	im, err := NewFrom(data, 640, 480, SRGB)
	if err != nil {
		t.Fatalf("NewFrom failed: %v", err)
	}

	v := im.Lower()

	if diff := cmp.Diff(tensor.Shape{480, 640, 3}, v.Shape()); diff != "" {
		t.Errorf("lowered shape mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1920, 3, 1}, v.Strides()); diff != "" {
		t.Errorf("lowered strides mismatch (-want +got):\n%s", diff)
	}
	if !tensor.AxesEqual(v.Axes(), tensor.YXC("srgb")) {
		t.Errorf("lowered axes = %s, want %s", tensor.FormatAxes(v.Axes()), tensor.FormatAxes(tensor.YXC("srgb")))
	}

	// Lowering re-exposes storage: tensor (y, x, c) reads the same sample
	// as image (x, y, c).
	if v.At(100, 200, 1) != im.At(200, 100, 1) {
		t.Error("lowered view disagrees with image at (x=200, y=100, c=1)")
	}

	back, err := Lift(v, SRGB)
	if err != nil {
		t.Fatalf("Lift of a lowered view failed: %v", err)
	}
	if back.Width() != 640 || back.Height() != 480 || back.Space() != SRGB {
		t.Fatalf("lifted image = %s, want image 640x480 srgb", back)
	}
	// Bit-exact round trip, no numeric conversion on this path.
	for y := 0; y < 480; y += 37 {
		for x := 0; x < 640; x += 41 {
			for c := 0; c < 3; c++ {
				if back.At(x, y, c) != im.At(x, y, c) {
					t.Fatalf("round trip changed sample at (%d,%d,%d)", x, y, c)
				}
			}
		}
	}
}

func TestLift_UntaggedViewIsAxisMismatch(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{480, 640, 3}, tensor.RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	// Shape alone never identifies an image: a 3-long trailing axis is not
	// assumed to be color.
	_, err = Lift(d.View(), SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftAxisMismatch {
		t.Errorf("reason = %v, want axis mismatch", le.Reason)
	}
}

func TestLift_SwappedMarkersIsAxisMismatch(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{640, 480, 3}, tensor.RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	// (x, y, channel) instead of (y, x, channel).
	err = d.Tag(
		tensor.Axis{Role: tensor.RoleX},
		tensor.Axis{Role: tensor.RoleY},
		tensor.Axis{Role: tensor.RoleChannel, Space: "srgb"},
	)
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	_, err = Lift(d.View(), SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftAxisMismatch {
		t.Errorf("reason = %v, want axis mismatch", le.Reason)
	}
}

func TestLift_WrongSpaceTagIsAxisMismatch(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{480, 640, 3}, tensor.RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if err := d.Tag(tensor.YXC("bgr")...); err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	// The annotation says bgr; lifting as srgb must not relabel.
	_, err = Lift(d.View(), SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftAxisMismatch {
		t.Errorf("reason = %v, want axis mismatch", le.Reason)
	}
}

func TestLift_ColMajorIsLayoutMismatch(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{480, 640, 3}, tensor.ColMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if err := d.Tag(tensor.YXC("srgb")...); err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	_, err = Lift(d.View(), SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftLayoutMismatch {
		t.Errorf("reason = %v, want layout mismatch", le.Reason)
	}
}

func TestLift_NonCanonicalStridesIsLayoutMismatch(t *testing.T) {
	// A row-cropped window: valid view, padded row pitch, not contiguous.
	data := make([]uint8, 480*640*3)
	v, err := tensor.NewView(data, tensor.Shape{100, 100, 3}, []int{640 * 3, 3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	v, err = v.WithAxes(tensor.YXC("srgb")...)
	if err != nil {
		t.Fatalf("WithAxes failed: %v", err)
	}
	_, err = Lift(v, SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftLayoutMismatch {
		t.Errorf("reason = %v, want layout mismatch", le.Reason)
	}
}

func TestLift_ChannelCountIsChannelMismatch(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{480, 640, 4}, tensor.RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if err := d.Tag(tensor.YXC("srgb")...); err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	_, err = Lift(d.View(), SRGB)
	var le *semerr.LiftError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *semerr.LiftError", err)
	}
	if le.Reason != semerr.LiftChannelMismatch {
		t.Errorf("reason = %v, want channel mismatch", le.Reason)
	}
}

func TestLift_UnknownSpace(t *testing.T) {
	d, err := tensor.NewDense[uint8](tensor.Shape{4, 4, 3}, tensor.RowMajor)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	_, err = Lift(d.View(), ColorSpace("yuv"))
	var ce *semerr.ColorSpaceError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *semerr.ColorSpaceError", err)
	}
}

func TestLift_SharesStorage(t *testing.T) {
	data := []uint8{1, 2, 3}
	v, err := tensor.NewView(data, tensor.Shape{1, 1, 3}, []int{3, 3, 1})
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	v, err = v.WithAxes(tensor.YXC("srgb")...)
	if err != nil {
		t.Fatalf("WithAxes failed: %v", err)
	}
	im, err := Lift(v, SRGB)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	data[1] = 99 // lift documents storage sharing
	if got := im.At(0, 0, 1); got != 99 {
		t.Errorf("lifted image At(0,0,1) = %d, want 99 (shared storage)", got)
	}
}
