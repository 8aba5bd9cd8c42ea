package geom

// Frame is a coordinate frame used as a type-level tag. A frame is a
// zero-size marker struct; its identity is its Go type, so two points or
// poses agree on a frame exactly when they agree on the type parameter.
// Applications declare additional frames as one-line structs:
//
//	type Lidar struct{}
//
//	func (Lidar) FrameName() string { return "lidar" }
//
// FrameName is the frame's stable human-readable name, used in dynamic
// binding and error messages. Names must be unique within a deployment.
type Frame interface {
	FrameName() string
}

// World is the application's fixed reference frame.
type World struct{}

// FrameName returns "world".
func (World) FrameName() string { return "world" }

// Body is the moving rig or vehicle frame sensors are mounted to.
type Body struct{}

// FrameName returns "body".
func (Body) FrameName() string { return "body" }

// Cam is the camera optical frame: +X right, +Y down, +Z forward along the
// optical axis. Projection in the camera package is defined against this
// frame.
type Cam struct{}

// FrameName returns "cam".
func (Cam) FrameName() string { return "cam" }

// frameName returns the name of a frame type without needing a value.
func frameName[F Frame]() string {
	var f F
	return f.FrameName()
}
