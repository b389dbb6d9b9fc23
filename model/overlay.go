package model

// Overlay is an editable text box on the editing surface, either seeded
// from a ParsedBlock or created by the user. Geometry fields are in the
// viewport pixel space that was active when they were last set.
//
// Overlays are identified by a caller-assigned stable ID; side tables such
// as the viewport snapshot store key on that ID rather than on object
// identity, so an overlay's associated state can be explicitly discarded
// when the overlay is destroyed.
type Overlay struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Left       float64         `json:"left"`
	Top        float64         `json:"top"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	FontSize   float64         `json:"fontSize"`
	FontFamily string          `json:"fontFamily"`
	FontWeight FontWeight      `json:"fontWeight"`
	LineHeight float64         `json:"lineHeight"`
	Fill       string          `json:"fill"`
	Opacity    float64         `json:"opacity"`
	Original   *OriginalBounds `json:"originalBounds,omitempty"`
}

// Bounds returns the overlay's current rectangle in viewport pixels
func (o Overlay) Bounds() Rect {
	return Rect{X: o.Left, Y: o.Top, Width: o.Width, Height: o.Height}
}

// OriginalBounds is a snapshot of where an overlay's box sat when it was
// first activated, stored as viewport-relative ratios together with the
// rotation in effect at capture time. Ratios describe an axis-aligned,
// un-rotated interpretation of page-relative space: the captured viewport
// rectangle is un-rotated before the ratios are taken, so later replay
// only needs the rotation delta between capture and use.
type OriginalBounds struct {
	LeftRatio       float64 `json:"leftRatio"`
	TopRatio        float64 `json:"topRatio"`
	WidthRatio      float64 `json:"widthRatio"`
	HeightRatio     float64 `json:"heightRatio"`
	CaptureRotation float64 `json:"captureRotation"` // degrees, multiple of 90
}

// OverlayFromBlock seeds an editable overlay from a reconstructed block.
// The block's page-unit geometry is scaled into viewport pixels by the
// given per-axis scale factors (viewport size over page size).
func OverlayFromBlock(id string, block ParsedBlock, scaleX, scaleY float64) Overlay {
	lineHeight := block.LineHeight
	if !(lineHeight > 0) {
		lineHeight = DefaultLineHeight
	}
	return Overlay{
		ID:         id,
		Text:       block.Text,
		Left:       block.X * scaleX,
		Top:        block.Y * scaleY,
		Width:      block.Width * scaleX,
		Height:     block.Height * scaleY,
		FontSize:   block.FontSize * scaleY,
		FontFamily: block.FontFamily,
		FontWeight: block.FontWeight,
		LineHeight: lineHeight,
		Fill:       block.Fill,
		Opacity:    1,
	}
}
