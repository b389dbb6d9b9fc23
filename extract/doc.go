// Package extract normalizes raw per-character glyph records into typed
// text items ready for layout reconstruction.
//
// The package boundary is the [CharEvent] walker: a structured-text
// provider reports one event per character (character, origin, font
// descriptor, size, bounding quad, color), in provider-visitation order,
// which is not guaranteed to be reading order. [Extractor.Extract] folds
// a page's events into a flat list of [model.TextItem] values, validating
// and clamping fields defensively at the boundary: degenerate quads fall
// back to origin-plus-size boxes, and malformed colors fall back to a
// fixed dark gray.
//
// A concrete provider over github.com/ledongthuc/pdf is included; see
// [PageEvents].
package extract
