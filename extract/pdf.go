package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/palimpsest/model"
)

// PageEvents walks a PDF page's positioned characters and converts them
// into character events in top-down page coordinates, together with the
// page's bounds. The underlying library reports baseline positions in
// bottom-up PDF coordinates and carries no quad or fill color, so events
// use the origin-plus-size fallback box and the default fill.
func PageEvents(page pdf.Page) ([]CharEvent, model.Rect, error) {
	bounds, err := pageMediaBox(page)
	if err != nil {
		return nil, model.Rect{}, err
	}

	content := page.Content()
	events := make([]CharEvent, 0, len(content.Text))

	for _, ch := range content.Text {
		// Approximate the glyph top by one font size above the baseline.
		top := bounds.Height - ch.Y - ch.FontSize

		ev := CharEvent{
			Char:     ch.S,
			Origin:   model.Point{X: ch.X, Y: top},
			FontName: ch.Font,
			FontSize: ch.FontSize,
		}
		if ch.W > 0 && ch.FontSize > 0 {
			ev.Quad = &Quad{
				UpperLeft:  model.Point{X: ch.X, Y: top},
				UpperRight: model.Point{X: ch.X + ch.W, Y: top},
				LowerLeft:  model.Point{X: ch.X, Y: top + ch.FontSize},
				LowerRight: model.Point{X: ch.X + ch.W, Y: top + ch.FontSize},
			}
		}
		events = append(events, ev)
	}

	return events, bounds, nil
}

// pageMediaBox resolves the page's MediaBox, walking up the page tree for
// inherited values, and returns it as a zero-origin rectangle.
func pageMediaBox(page pdf.Page) (model.Rect, error) {
	v := page.V
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
			x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
			rect := model.NewRectFromPoints(model.Point{X: x0, Y: y0}, model.Point{X: x1, Y: y1})
			if !rect.IsValid() {
				return model.Rect{}, fmt.Errorf("degenerate MediaBox [%v %v %v %v]", x0, y0, x1, y1)
			}
			return model.NewRect(0, 0, rect.Width, rect.Height), nil
		}
		v = v.Key("Parent")
	}
	return model.Rect{}, fmt.Errorf("page has no MediaBox")
}
