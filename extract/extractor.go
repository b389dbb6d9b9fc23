package extract

import (
	"strings"

	"github.com/tsawler/palimpsest/font"
	"github.com/tsawler/palimpsest/model"
)

// Quad is the bounding quadrilateral of a glyph as reported by the
// structured-text provider, in page units (top-down Y).
type Quad struct {
	UpperLeft  model.Point
	UpperRight model.Point
	LowerLeft  model.Point
	LowerRight model.Point
}

// IsDegenerate returns true if the quad encloses no usable area
func (q Quad) IsDegenerate() bool {
	return q.LowerRight.X <= q.UpperLeft.X || q.LowerRight.Y <= q.UpperLeft.Y
}

// RGB is a raw color triple from the provider. Channels may be in the
// 0-1 or the 0-255 range; HexColor handles both.
type RGB struct {
	R, G, B float64
}

// CharEvent is one character reported by the structured-text provider.
// Quad and Color are nil when the provider has no such information.
type CharEvent struct {
	Char     string
	Origin   model.Point // top-left origin in page units
	FontName string      // raw embedded name, e.g. "BAAAAA+ArialMT-Bold"
	FontSize float64
	Quad     *Quad
	Color    *RGB
}

// Extractor normalizes a page's character events into text items.
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract converts one page's character events into text items, one per
// retained character. Characters whose trimmed form is empty are skipped.
func (e *Extractor) Extract(events []CharEvent) []model.TextItem {
	items := make([]model.TextItem, 0, len(events))

	for _, ev := range events {
		if strings.TrimSpace(ev.Char) == "" {
			continue
		}

		bounds := e.charBounds(ev)
		family, weight := font.Resolve(ev.FontName)

		items = append(items, model.TextItem{
			Text:       ev.Char,
			X:          bounds.X,
			Y:          bounds.Y,
			Width:      bounds.Width,
			Height:     bounds.Height,
			FontSize:   ev.FontSize,
			FontFamily: family,
			FontWeight: weight,
			Fill:       HexColor(ev.Color),
			LineHeight: model.DefaultLineHeight,
		})
	}

	return items
}

// charBounds derives the character's bounding box from the quad's
// upper-left and lower-right corners, falling back to an origin-plus-size
// square when the quad is missing or degenerate.
func (e *Extractor) charBounds(ev CharEvent) model.Rect {
	if ev.Quad != nil && !ev.Quad.IsDegenerate() {
		return model.NewRectFromPoints(ev.Quad.UpperLeft, ev.Quad.LowerRight)
	}
	return model.NewRectFromPoints(ev.Origin, model.Point{
		X: ev.Origin.X + ev.FontSize,
		Y: ev.Origin.Y + ev.FontSize,
	})
}
