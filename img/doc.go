// Package img owns Layer 2 (Images) of the sightline data model.
//
// Responsibilities: images as semantically-annotated tensors (fixed (y, x,
// channel) axis order, declared color space), the lowering/lifting contract
// between images and raw tensors, continuous pixel coordinates under the
// pixel-center convention, and explicit caller-invoked color conversions.
// Nothing in this package converts color spaces implicitly; lifting checks
// semantics, it never fixes them.
// Key types: Image, ColorSpace, Domain, PointF.
//
// Dependency rule: L2 may depend on L0 (semerr) and L1 (tensor), but never
// on L3+.
package img
