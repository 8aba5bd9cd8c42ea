// Package geom owns Layer 3 (Geometry) of the sightline data model.
//
// Responsibilities: coordinate frames as types, validated 3D rotations,
// rigid transforms (SE(3)) between statically-known frames, and a
// runtime-checked escape hatch for frames only known dynamically. Points
// and poses are tagged with their frames at the type level, so composing
// transforms across mismatched frames or mixing points from different
// frames does not compile.
// Key types: Frame, Rotation, Point, Pose, FrameID, DynPose.
//
// Dependency rule: L3 may depend on L0 (semerr), but never on L1/L2 or L4+.
package geom
