package viewport

import (
	"github.com/tsawler/palimpsest/model"
)

// SnapshotStore remembers each overlay's original bounds as page-relative
// ratios with the rotation epoch they were captured at. Entries are keyed
// by the overlay's stable ID and live until explicitly forgotten, so the
// store's lifetime tracks the editing surface's, not the garbage
// collector's.
//
// The store is not safe for concurrent mutation; the caller applies
// geometry operations on a single update cadence.
type SnapshotStore struct {
	snapshots map[string]model.OriginalBounds
}

// NewSnapshotStore creates an empty snapshot store
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string]model.OriginalBounds),
	}
}

// Capture records the overlay's current viewport rectangle as ratios of
// the given viewport dimensions, tagged with the rotation in effect.
// Capturing again for the same ID deliberately re-captures, replacing the
// previous snapshot. Returns the stored snapshot.
func (s *SnapshotStore) Capture(overlayID string, rect model.Rect, viewportWidth, viewportHeight, rotationDegrees float64) model.OriginalBounds {
	ratios := RectToRatios(rect, viewportWidth, viewportHeight)
	snapshot := model.OriginalBounds{
		LeftRatio:       ratios.Left,
		TopRatio:        ratios.Top,
		WidthRatio:      ratios.Width,
		HeightRatio:     ratios.Height,
		CaptureRotation: float64(NormalizeRotation(rotationDegrees)) * 90,
	}
	s.snapshots[overlayID] = snapshot
	return snapshot
}

// CaptureIfAbsent records a snapshot only if none exists for the overlay
// yet, and returns the snapshot in effect afterwards. This is the "first
// activation" path: rotation and zoom replay read the snapshot but never
// overwrite it.
func (s *SnapshotStore) CaptureIfAbsent(overlayID string, rect model.Rect, viewportWidth, viewportHeight, rotationDegrees float64) model.OriginalBounds {
	if existing, ok := s.snapshots[overlayID]; ok {
		return existing
	}
	return s.Capture(overlayID, rect, viewportWidth, viewportHeight, rotationDegrees)
}

// Lookup returns the snapshot for an overlay, if one was captured
func (s *SnapshotStore) Lookup(overlayID string) (model.OriginalBounds, bool) {
	snapshot, ok := s.snapshots[overlayID]
	return snapshot, ok
}

// Forget drops an overlay's snapshot; called when the overlay is destroyed
func (s *SnapshotStore) Forget(overlayID string) {
	delete(s.snapshots, overlayID)
}

// Len returns the number of stored snapshots
func (s *SnapshotStore) Len() int {
	return len(s.snapshots)
}

// ReplayBounds maps a captured snapshot into a page-space rectangle under
// the current rotation. The stored corner ratios are rotated by the delta
// between the capture epoch and the current rotation, re-bounded, and
// scaled into the page's intrinsic dimensions rather than the viewport's.
func ReplayBounds(snapshot model.OriginalBounds, currentRotationDegrees, pageWidth, pageHeight float64) model.Rect {
	ratios := Ratios{
		Left:   snapshot.LeftRatio,
		Top:    snapshot.TopRatio,
		Width:  snapshot.WidthRatio,
		Height: snapshot.HeightRatio,
	}
	delta := RotationDelta(snapshot.CaptureRotation, currentRotationDegrees)
	return ratios.Rotate(delta).ToRect(pageWidth, pageHeight)
}
