// Package writer applies a save plan to the source PDF.
//
// The source document's pages are imported as templates and replayed
// unchanged; each planned page then gets its masks and replacement text
// drawn on top, mask first, in the page-space geometry the planner
// computed. Text draws use the core font matching the planned font
// class, so no font embedding or subsetting is needed. A document that
// cannot be loaded, or output that cannot be produced, fails the whole
// save with a single error; no partial output is ever returned.
package writer
