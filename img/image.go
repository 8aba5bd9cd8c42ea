package img

import (
	"fmt"

	"github.com/banshee-data/sightline/semerr"
	"github.com/banshee-data/sightline/tensor"
)

// Image is a 2D raster with a declared color space. Storage is always
// row-major (y, x, channel) contiguous; the type has no setters, so an
// Image can be shared freely once constructed. Pixel data enters through
// NewFrom and leaves through Lower and PixelSlice, both of which document
// their aliasing; everything else copies.
type Image[T tensor.Scalar] struct {
	data  []T
	w, h  int
	space ColorSpace
}

// New returns a zero-filled w x h image in the given color space.
func New[T tensor.Scalar](w, h int, space ColorSpace) (Image[T], error) {
	if err := checkImageParams(w, h, space); err != nil {
		return Image[T]{}, err
	}
	return Image[T]{
		data:  make([]T, w*h*space.Channels()),
		w:     w,
		h:     h,
		space: space,
	}, nil
}

// NewFrom wraps an existing pixel slice, laid out row-major (y, x, channel),
// without copying. The image adopts data; the caller must not write through
// the original slice afterwards. The length must be exactly
// w * h * space.Channels(); a length that works out to a whole number of
// channels per pixel different from the space's count is reported as a
// ColorSpaceError, any other length as a SizeError.
func NewFrom[T tensor.Scalar](data []T, w, h int, space ColorSpace) (Image[T], error) {
	if err := checkImageParams(w, h, space); err != nil {
		return Image[T]{}, err
	}
	if want := w * h * space.Channels(); len(data) != want {
		if len(data)%(w*h) == 0 {
			return Image[T]{}, &semerr.ColorSpaceError{
				Space:    string(space),
				Channels: len(data) / (w * h),
				Want:     space.Channels(),
			}
		}
		return Image[T]{}, &semerr.SizeError{
			Len:   len(data),
			Want:  want,
			Shape: []int{h, w, space.Channels()},
		}
	}
	return Image[T]{data: data, w: w, h: h, space: space}, nil
}

func checkImageParams(w, h int, space ColorSpace) error {
	if h <= 0 {
		return &semerr.ShapeError{Axis: 0, Dim: h, Shape: []int{h, w, space.Channels()}}
	}
	if w <= 0 {
		return &semerr.ShapeError{Axis: 1, Dim: w, Shape: []int{h, w, space.Channels()}}
	}
	if !space.Valid() {
		return &semerr.ColorSpaceError{Space: string(space)}
	}
	return nil
}

// Width returns the image width in pixels.
func (im Image[T]) Width() int { return im.w }

// Height returns the image height in pixels.
func (im Image[T]) Height() int { return im.h }

// Space returns the image's color space.
func (im Image[T]) Space() ColorSpace { return im.space }

// Channels returns the per-pixel channel count.
func (im Image[T]) Channels() int { return im.space.Channels() }

// Domain returns the coordinate domain this image defines.
func (im Image[T]) Domain() Domain {
	return Domain{Width: im.w, Height: im.h, Space: im.space}
}

// At returns the sample at pixel (x, y), channel c. x grows right, y grows
// down. At panics when any index is out of range; index arithmetic bugs are
// programmer errors, not recoverable conditions.
func (im Image[T]) At(x, y, c int) T {
	ch := im.space.Channels()
	if x < 0 || x >= im.w || y < 0 || y >= im.h || c < 0 || c >= ch {
		panic(fmt.Sprintf("img: index (%d, %d, %d) out of range for %s", x, y, c, im.Domain()))
	}
	return im.data[(y*im.w+x)*ch+c]
}

// PixelSlice returns the channel samples of pixel (x, y) as a slice aliasing
// the image's storage. Treat it as read-only; writing through it breaks the
// immutability every consumer of this image relies on. Panics when (x, y) is
// out of range.
func (im Image[T]) PixelSlice(x, y int) []T {
	if x < 0 || x >= im.w || y < 0 || y >= im.h {
		panic(fmt.Sprintf("img: pixel (%d, %d) out of range for %s", x, y, im.Domain()))
	}
	ch := im.space.Channels()
	base := (y*im.w + x) * ch
	return im.data[base : base+ch : base+ch]
}

// Clone returns a deep copy with freshly owned storage.
func (im Image[T]) Clone() Image[T] {
	data := make([]T, len(im.data))
	copy(data, im.data)
	return Image[T]{data: data, w: im.w, h: im.h, space: im.space}
}

// String returns a short description, e.g. "image 640x480 srgb".
func (im Image[T]) String() string {
	return fmt.Sprintf("image %dx%d %s", im.w, im.h, im.space)
}
