package img

import (
	"image"

	"github.com/banshee-data/sightline/semerr"
)

// Bridges to the standard library image model. These convert in-memory
// representations only; decoding and encoding stay with the codecs that
// produce and consume image.Image values.

// FromNRGBA copies a standard library NRGBA image into an RGBA image.
// The pixel data is copied: std images are mutable, this package's are not.
func FromNRGBA(src *image.NRGBA) (Image[uint8], error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkImageParams(w, h, RGBA); err != nil {
		return Image[uint8]{}, err
	}

	data := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(data[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
	}
	return Image[uint8]{data: data, w: w, h: h, space: RGBA}, nil
}

// ToNRGBA copies the image into a standard library NRGBA image. Defined for
// RGBA sources directly and for SRGB sources with alpha filled to 255.
func ToNRGBA(im Image[uint8]) (*image.NRGBA, error) {
	out := image.NewNRGBA(image.Rect(0, 0, im.w, im.h))
	switch im.space {
	case RGBA:
		// A fresh NRGBA is packed with stride 4*w, matching our layout.
		copy(out.Pix, im.data)
	case SRGB:
		for p := 0; p < im.w*im.h; p++ {
			s := im.data[p*3:]
			d := out.Pix[p*4:]
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xff
		}
	default:
		return nil, &semerr.ColorSpaceError{Space: string(im.space), Op: "ToNRGBA"}
	}
	return out, nil
}

// FromGray copies a standard library Gray image into a Gray image.
func FromGray(src *image.Gray) (Image[uint8], error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkImageParams(w, h, Gray); err != nil {
		return Image[uint8]{}, err
	}

	data := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(data[y*w:(y+1)*w], src.Pix[off:off+w])
	}
	return Image[uint8]{data: data, w: w, h: h, space: Gray}, nil
}

// ToGrayStd copies a Gray image into a standard library Gray image.
func ToGrayStd(im Image[uint8]) (*image.Gray, error) {
	if im.space != Gray {
		return nil, &semerr.ColorSpaceError{Space: string(im.space), Op: "ToGrayStd"}
	}
	out := image.NewGray(image.Rect(0, 0, im.w, im.h))
	copy(out.Pix, im.data)
	return out, nil
}
