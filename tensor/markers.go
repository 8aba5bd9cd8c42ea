package tensor

// AxisRole declares what an axis of a tensor means. Roles are attached
// explicitly (Dense.Tag, View.WithAxes, image lowering) and are never
// inferred from shape: a 3-long last axis is not assumed to be color.
type AxisRole int

const (
	// RoleNone marks an axis with no declared meaning.
	RoleNone AxisRole = iota
	// RoleY marks the vertical spatial axis (rows, top to bottom).
	RoleY
	// RoleX marks the horizontal spatial axis (columns, left to right).
	RoleX
	// RoleChannel marks the per-pixel channel axis.
	RoleChannel
)

// String returns the string representation of AxisRole.
func (r AxisRole) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleY:
		return "y"
	case RoleX:
		return "x"
	case RoleChannel:
		return "channel"
	default:
		return "unknown"
	}
}

// Axis is a marker attached to one tensor axis.
type Axis struct {
	Role AxisRole
	// Space carries the color-space tag for RoleChannel axes ("srgb",
	// "gray", ...). It is opaque to this package; the img layer defines
	// the vocabulary. Empty for non-channel roles.
	Space string
}

// String formats the marker as "y", "x" or "channel(srgb)".
func (a Axis) String() string {
	if a.Role == RoleChannel && a.Space != "" {
		return "channel(" + a.Space + ")"
	}
	return a.Role.String()
}

// YXC returns the canonical image axis markers: (y, x, channel) with the
// given channel-space tag. This is the marker list lowering attaches and
// lifting requires.
func YXC(space string) []Axis {
	return []Axis{{Role: RoleY}, {Role: RoleX}, {Role: RoleChannel, Space: space}}
}

// AxesEqual reports whether two marker lists are identical in length, role
// and space tag.
func AxesEqual(a, b []Axis) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneAxes(a []Axis) []Axis {
	if a == nil {
		return nil
	}
	c := make([]Axis, len(a))
	copy(c, a)
	return c
}

// FormatAxes renders a marker list for diagnostics, e.g.
// "(y, x, channel(srgb))".
func FormatAxes(a []Axis) string {
	if len(a) == 0 {
		return "(untagged)"
	}
	out := "("
	for i, ax := range a {
		if i > 0 {
			out += ", "
		}
		out += ax.String()
	}
	return out + ")"
}
