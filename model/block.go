package model

// FontWeight is the resolved weight of a run of text
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// DefaultLineHeight is the line-height ratio assigned to extracted text
// before paragraph assembly derives a measured one.
const DefaultLineHeight = 1.2

// DefaultFill is the fallback fill color used when a glyph carries no
// usable color information.
const DefaultFill = "#333333"

// TextItem is one extracted glyph or merged word fragment. X/Y is the
// top-left corner in page units.
type TextItem struct {
	Text       string
	X, Y       float64
	Width      float64
	Height     float64
	FontSize   float64
	FontFamily string
	FontWeight FontWeight
	Fill       string  // hex color, e.g. "#1a1a1a"
	LineHeight float64 // ratio of line advance to font size
}

// Bounds returns the item's bounding rectangle
func (t TextItem) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Line is a horizontal cluster of text items, sorted left to right.
// Y is the representative top coordinate the cluster formed around.
type Line struct {
	Y     float64
	Items []TextItem
}

// ParagraphLine is a finalized line collapsed to a single record with the
// line's dominant style. Input to paragraph assembly.
type ParagraphLine struct {
	Text       string
	MinX, MaxX float64
	Y          float64
	Height     float64
	FontSize   float64
	FontFamily string
	FontWeight FontWeight
	Fill       string
	LineHeight float64
}

// ParsedBlock is a reconstructed paragraph of original document text with
// uniform style. Blocks are immutable once produced; edits become separate
// Overlay entities rather than mutations of the block.
type ParsedBlock struct {
	Text       string     `json:"text"` // lines joined with "\n"
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	FontSize   float64    `json:"fontSize"`
	FontFamily string     `json:"fontFamily"`
	FontWeight FontWeight `json:"fontWeight"`
	LineHeight float64    `json:"lineHeight"`
	Fill       string     `json:"fill"`
}

// Bounds returns the block's bounding rectangle
func (b ParsedBlock) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// ParsedPage is the extraction result for one page
type ParsedPage struct {
	PageNumber int           `json:"pageNumber"` // 1-indexed
	Width      float64       `json:"width"`      // page units
	Height     float64       `json:"height"`     // page units
	Blocks     []ParsedBlock `json:"blocks"`
}

// ParsedDocument is the extraction result for a whole document
type ParsedDocument struct {
	Pages []ParsedPage `json:"pages"`
}

// Page returns the parsed page with the given 1-indexed number, or nil
func (d *ParsedDocument) Page(number int) *ParsedPage {
	for i := range d.Pages {
		if d.Pages[i].PageNumber == number {
			return &d.Pages[i]
		}
	}
	return nil
}

// BlockCount returns the total number of blocks across all pages
func (d *ParsedDocument) BlockCount() int {
	total := 0
	for _, p := range d.Pages {
		total += len(p.Blocks)
	}
	return total
}
