// Package layout reconstructs paragraph-level text blocks from a flat
// stream of extracted glyphs.
//
// No upstream structure is available: the provider reports individual
// characters in visitation order, so reading structure is recovered with
// geometric clustering heuristics, in three passes:
//
//  1. [LineClusterer] groups characters into lines by vertical proximity.
//  2. [WordMerger] groups each line's characters into words by horizontal
//     gap, and [CollapseLine] folds the words into one dominant-style
//     record per line.
//  3. [ParagraphAssembler] folds consecutive lines into paragraphs using
//     alignment, style, and gap heuristics, deriving an effective
//     line height per paragraph.
//
// [Analyzer] chains the three passes. All passes are pure reductions
// over their input slices; no state is carried between pages.
//
// The clustering thresholds are fixed constants tuned against real
// documents; they are exposed through the Config types but are not
// scaled by DPI or font metrics.
package layout
