package img

import (
	"fmt"

	"github.com/banshee-data/sightline/semerr"
	"github.com/banshee-data/sightline/tensor"
)

// Lower re-exposes the image as a read-only tensor view over the same
// storage (no copy, no conversion). The view has shape [h, w, channels],
// canonical row-major strides, and (y, x, channel) axis markers carrying
// the image's color space. Lower is total: every image lowers.
func (im Image[T]) Lower() tensor.View[T] {
	shape := tensor.Shape{im.h, im.w, im.space.Channels()}
	v := tensor.NewViewUnchecked(im.data, shape, tensor.CanonicalStrides(shape, tensor.RowMajor))
	// Marker count equals rank by construction, so WithAxes cannot fail.
	tagged, _ := v.WithAxes(tensor.YXC(string(im.space))...)
	return tagged
}

// Lift reinterprets a tensor view as an image in the given color space. It
// validates rather than fixes: on success the image shares the view's
// storage bit-for-bit, and Lift(im.Lower(), im.Space()) reproduces im
// exactly. Failure is a LiftError naming the specific mismatch:
//
//   - axis mismatch: the view's markers are not (y, x, channel) tagged with
//     the requested space. Markers are never inferred; an untagged
//     480x640x3 view does not lift.
//   - layout mismatch: the view is not row-major contiguous.
//   - channel mismatch: the channel axis length differs from the space's
//     channel count.
func Lift[T tensor.Scalar](v tensor.View[T], space ColorSpace) (Image[T], error) {
	if !space.Valid() {
		return Image[T]{}, &semerr.ColorSpaceError{Space: string(space)}
	}

	axes := v.Axes()
	want := tensor.YXC(string(space))
	if axes == nil {
		return Image[T]{}, &semerr.LiftError{
			Reason: semerr.LiftAxisMismatch,
			Detail: "view carries no axis markers",
		}
	}
	if !tensor.AxesEqual(axes, want) {
		return Image[T]{}, &semerr.LiftError{
			Reason: semerr.LiftAxisMismatch,
			Detail: fmt.Sprintf("view axes %s, want %s", tensor.FormatAxes(axes), tensor.FormatAxes(want)),
		}
	}

	// Markers attach only with one marker per axis, so rank is 3 here.
	shape := v.Shape()
	if v.Layout() != tensor.RowMajor || !v.Contiguous() {
		return Image[T]{}, &semerr.LiftError{
			Reason: semerr.LiftLayoutMismatch,
			Detail: fmt.Sprintf("view strides %v (%s), want row-major contiguous %v",
				v.Strides(), v.Layout(), tensor.CanonicalStrides(shape, tensor.RowMajor)),
		}
	}

	if shape[2] != space.Channels() {
		return Image[T]{}, &semerr.LiftError{
			Reason: semerr.LiftChannelMismatch,
			Detail: fmt.Sprintf("channel axis has %d entries, %s needs %d", shape[2], space, space.Channels()),
		}
	}

	cv, err := v.AsContiguous()
	if err != nil {
		return Image[T]{}, err
	}
	return Image[T]{data: cv.Data(), w: shape[1], h: shape[0], space: space}, nil
}
