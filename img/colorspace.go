package img

// ColorSpace identifies the channel semantics of an image. The space is part
// of an image's type-level contract: operations that require a particular
// space validate it and fail rather than reinterpret samples.
type ColorSpace string

const (
	// Gray is single-channel intensity.
	Gray ColorSpace = "gray"
	// SRGB is gamma-encoded RGB in sRGB primaries, channel order R, G, B.
	SRGB ColorSpace = "srgb"
	// LinearRGB is linear-light RGB in sRGB primaries, channel order R, G, B.
	LinearRGB ColorSpace = "linear-rgb"
	// BGR is gamma-encoded sRGB with the channel order reversed to B, G, R.
	BGR ColorSpace = "bgr"
	// RGBA is gamma-encoded sRGB with a straight (non-premultiplied) alpha
	// channel, order R, G, B, A.
	RGBA ColorSpace = "rgba"
)

// Channels returns the channel count the space requires, or 0 for a space
// this package does not define.
func (c ColorSpace) Channels() int {
	switch c {
	case Gray:
		return 1
	case SRGB, LinearRGB, BGR:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

// Valid reports whether c is one of the defined color spaces.
func (c ColorSpace) Valid() bool { return c.Channels() > 0 }

// String returns the string representation of ColorSpace.
func (c ColorSpace) String() string { return string(c) }
