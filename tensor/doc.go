// Package tensor owns Layer 1 (Storage) of the sightline data model.
//
// Responsibilities: the shape/stride/layout kernel, the owning N-axis
// container, read-only and explicitly-named mutable views, contiguity
// decisions, and the axis-marker annotations that image lowering attaches.
// Key types: Shape, Layout, Dense, View, MutView, ContiguousView, Axis.
//
// Aliasing discipline: View is read-only and may alias storage freely;
// MutView is the only mutation surface and requires exclusive access to the
// storage for its lifetime. The package never synchronizes access itself.
//
// Dependency rule: L1 may depend on L0 (semerr), but never on L2+.
package tensor
