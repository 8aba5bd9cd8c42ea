package img

import (
	"math"

	"github.com/banshee-data/sightline/semerr"
	"github.com/banshee-data/sightline/tensor"
)

// Float constrains operations that interpolate or apply transfer curves to
// floating-point element types.
type Float interface {
	~float32 | ~float64
}

// BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// sRGB transfer-curve breakpoints.
const (
	srgbEncodedKnee = 0.04045
	srgbLinearKnee  = 0.0031308
)

// ToGray collapses a three-channel image to single-channel intensity using
// the BT.601 weights, applied to the samples as stored (no linearization is
// performed first; convert explicitly with ToLinear when linear-light luma
// is wanted). Defined for SRGB, LinearRGB and BGR sources; integer element
// types round to nearest.
func ToGray[T tensor.Scalar](im Image[T]) (Image[T], error) {
	var ri, gi, bi int
	switch im.space {
	case SRGB, LinearRGB:
		ri, gi, bi = 0, 1, 2
	case BGR:
		ri, gi, bi = 2, 1, 0
	default:
		return Image[T]{}, &semerr.ColorSpaceError{Space: string(im.space), Op: "ToGray"}
	}

	out := make([]T, im.w*im.h)
	for p := range out {
		base := p * 3
		y := lumaR*float64(im.data[base+ri]) +
			lumaG*float64(im.data[base+gi]) +
			lumaB*float64(im.data[base+bi])
		out[p] = quantize[T](y)
	}
	return Image[T]{data: out, w: im.w, h: im.h, space: Gray}, nil
}

// SwapRB reverses the first and third channel of every pixel and flips the
// declared space between SRGB and BGR. The samples and the annotation move
// together; relabeling without reordering is not expressible.
func SwapRB[T tensor.Scalar](im Image[T]) (Image[T], error) {
	var to ColorSpace
	switch im.space {
	case SRGB:
		to = BGR
	case BGR:
		to = SRGB
	default:
		return Image[T]{}, &semerr.ColorSpaceError{Space: string(im.space), Op: "SwapRB"}
	}

	out := make([]T, len(im.data))
	for base := 0; base < len(out); base += 3 {
		out[base] = im.data[base+2]
		out[base+1] = im.data[base+1]
		out[base+2] = im.data[base]
	}
	return Image[T]{data: out, w: im.w, h: im.h, space: to}, nil
}

// ToLinear decodes a gamma-encoded SRGB image (samples in [0, 1]) to
// LinearRGB using the sRGB transfer curve.
func ToLinear[T Float](im Image[T]) (Image[T], error) {
	if im.space != SRGB {
		return Image[T]{}, &semerr.ColorSpaceError{Space: string(im.space), Op: "ToLinear"}
	}
	out := make([]T, len(im.data))
	for i, v := range im.data {
		out[i] = T(srgbToLinear(float64(v)))
	}
	return Image[T]{data: out, w: im.w, h: im.h, space: LinearRGB}, nil
}

// ToSRGB encodes a LinearRGB image (samples in [0, 1]) to gamma-encoded
// SRGB, the inverse of ToLinear.
func ToSRGB[T Float](im Image[T]) (Image[T], error) {
	if im.space != LinearRGB {
		return Image[T]{}, &semerr.ColorSpaceError{Space: string(im.space), Op: "ToSRGB"}
	}
	out := make([]T, len(im.data))
	for i, v := range im.data {
		out[i] = T(linearToSRGB(float64(v)))
	}
	return Image[T]{data: out, w: im.w, h: im.h, space: SRGB}, nil
}

func srgbToLinear(v float64) float64 {
	if v <= srgbEncodedKnee {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= srgbLinearKnee {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// quantize converts a computed sample back to the element type, rounding to
// nearest for integer element types.
func quantize[T tensor.Scalar](v float64) T {
	switch any(T(0)).(type) {
	case float32, float64:
		return T(v)
	default:
		return T(math.Round(v))
	}
}
