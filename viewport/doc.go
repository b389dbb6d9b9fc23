// Package viewport maintains the bidirectional mapping between a page's
// intrinsic coordinate space and a viewer's current, possibly rotated and
// zoomed, pixel space.
//
// All rotation reasoning happens on the unit square: a pixel rectangle is
// normalized to viewport-relative ratios, its corners are rotated by a
// whole number of quarter turns, the rotated corners are re-bounded, and
// the result is scaled to the target space. Because rotations are always
// multiples of 90 degrees, corners map exactly onto corners and the
// rotated bounding box is itself axis-aligned; there is no interpolation
// error to accumulate across repeated rotations.
//
// [SnapshotStore] remembers, per overlay, where its box sat as
// page-relative ratios and at which rotation epoch they were captured.
// Replaying a snapshot against the current rotation yields a correct
// page-space rectangle even if the page has been rotated or rescaled any
// number of times since the edit was made.
package viewport
