// Package semerr owns Layer 0 (Errors) of the sightline data model.
//
// Responsibilities: the shared error taxonomy every fallible operation in
// this module returns. Each error type names the invariant it reports and
// carries the offending values; there is no generic "invalid input" error.
// Key types: ShapeError, SizeError, StrideError, MarkerError,
// ContiguityError, ColorSpaceError, LiftError, RotationError,
// IntrinsicsError, DepthError, BoundsError, DomainError, MetricError,
// DimensionError, FrameError, Kind.
//
// Dependency rule: L0 depends on the standard library only; every other
// layer may depend on L0.
package semerr
