// Package model provides the intermediate representation (IR) for extracted
// and editable page content.
//
// This package defines the data structures shared by the extraction pipeline
// and the save-time planner. Extraction produces [TextItem] values, which the
// layout package folds into [ParsedBlock] paragraphs grouped under a
// [ParsedPage]. The editing surface represents its editable text boxes as
// [Overlay] values, optionally carrying an [OriginalBounds] snapshot of where
// the box sat when it was first activated.
//
// # Coordinate conventions
//
// All rectangles in this package are top-down: X/Y is the top-left corner and
// Y grows toward the bottom of the page. Extraction, layout, and overlay
// geometry all use this convention. Conversion to the PDF's bottom-up
// coordinate system happens only at save-planning time, in the plan package.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [Rect] - axis-aligned rectangle with union and corner helpers
//   - [Point] - 2D point
//
// # Save payload
//
// [SavePayload] and [PagePayload] mirror the wire format the editing surface
// submits at save time; field tags match its JSON names.
package model
