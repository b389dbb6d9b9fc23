// Package font resolves raw embedded font names into canonical families,
// weights, and draw-time font classes, and estimates rendered text widths.
//
// PDF font names arrive in forms like "BAAAAA+ArialMT-Bold": an optional
// six-letter subset prefix, a base family, and style suffixes. [Resolve]
// normalizes such a name to a canonical family ("Arial") and a weight.
// At save time, [ClassFor] maps a canonical family to one of three draw
// classes (serif, sans, mono) that the writer can always satisfy.
//
// Width estimation uses the embedded Go fonts as stand-ins for each class;
// it is an estimate for fit checks, not a layout-accurate measurement.
package font
