// Package feature owns Layer 5 (Features) of the sightline data model.
//
// Responsibilities: keypoints pinned to the image domain they were detected
// in, descriptors that declare their metric and dimensionality, and the
// comparison contract external matchers build on. The package computes
// distances but deliberately contains no matching algorithm; it exists so
// that descriptors from different extractors, metrics or image domains
// cannot be compared by accident.
// Key types: Keypoint, Metric, Descriptor, BinaryDescriptor, Set.
//
// Dependency rule: L5 may depend on L0 (semerr) and L2 (img), never on
// L1/L3/L4.
package feature
