// Package plan turns a save payload into page-space drawing instructions.
//
// For every overlay carrying text, the planner computes two instructions
// in the document's bottom-up coordinate convention: an opaque mask
// rectangle covering the original content, and a text draw placing the
// replacement text. The mask rectangle comes from the overlay's original
// bounds snapshot replayed under the page's current rotation when one
// exists, so content edited before the page was rotated is still masked
// in the right place; overlays without a snapshot are masked at their
// current geometry.
//
// Geometric degeneracy (non-positive or non-finite ratios, missing
// viewport dimensions) skips the affected overlay with a logged reason
// rather than failing the save; there is no partial-failure state beyond
// that.
package plan
