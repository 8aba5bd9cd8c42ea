// Package camera owns Layer 4 (Projection) of the sightline data model.
//
// Responsibilities: validated pinhole intrinsics, projection of camera-frame
// points into continuous pixel coordinates and its inverse, and lens
// distortion models applied in normalized image coordinates. Projection
// never divides silently: points at or behind the camera plane are rejected
// with a typed error instead of producing infinities.
// Key types: Intrinsics, DistortionModel, BrownConrady, Model.
//
// Dependency rule: L4 may depend on L0 (semerr), L2 (img) and L3 (geom),
// but never on L1 directly or on L5.
package camera
