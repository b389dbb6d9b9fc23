package writer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/palimpsest/font"
	"github.com/tsawler/palimpsest/model"
	"github.com/tsawler/palimpsest/plan"
)

// coreFonts maps each draw class to a core PDF font that every viewer
// can render without embedding.
var coreFonts = map[font.Class]string{
	font.ClassSans:  "Helvetica",
	font.ClassSerif: "Times",
	font.ClassMono:  "Courier",
}

// Core fonts are limited to CP1252; unsupported runes are replaced
// rather than dropped.
var cp1252 = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

// Apply draws the plan's masks and replacement text over the source
// document and returns the edited document bytes. The save is atomic:
// any failure to read the source or produce output returns an error and
// no bytes.
func Apply(source []byte, p *plan.Plan) (out []byte, err error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("empty source document")
	}

	// The template importer reports malformed documents by panicking.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("load source document: %v", r)
		}
	}()

	doc := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(source))

	// Importing the first page makes the source's page inventory
	// available.
	firstTemplate := importer.ImportPageFromStream(doc, &rs, 1, "/MediaBox")
	sizes := importer.GetPageSizes()
	pageCount := len(sizes)

	planned := make(map[int]plan.PagePlan, len(p.Pages))
	for _, page := range p.Pages {
		if page.PageNumber < 1 || page.PageNumber > pageCount {
			return nil, fmt.Errorf("plan references page %d, document has %d", page.PageNumber, pageCount)
		}
		planned[page.PageNumber] = page
	}

	for number := 1; number <= pageCount; number++ {
		box := sizes[number]["/MediaBox"]
		width, height := box["w"], box["h"]

		doc.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})

		template := firstTemplate
		if number > 1 {
			template = importer.ImportPageFromStream(doc, &rs, number, "/MediaBox")
		}
		importer.UseImportedTemplate(doc, template, 0, 0, width, 0)

		if page, ok := planned[number]; ok {
			drawPage(doc, page, height)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("produce output document: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPage draws one page's operations: mask first, then text on top
func drawPage(doc *fpdf.Fpdf, page plan.PagePlan, pageHeight float64) {
	for _, op := range page.Ops {
		drawMask(doc, op.Mask, pageHeight)
		drawText(doc, op.Text, pageHeight)
	}
}

// drawMask paints an opaque white rectangle with no border over the
// original content
func drawMask(doc *fpdf.Fpdf, mask plan.MaskOp, pageHeight float64) {
	top := pageHeight - (mask.Y + mask.Height)
	doc.SetFillColor(255, 255, 255)
	doc.SetAlpha(1, "Normal")
	doc.Rect(mask.X, top, mask.Width, mask.Height, "F")
}

// drawText draws the replacement text, wrapping lines at the planned
// maximum width. When the planner flagged an overflowing widest line,
// the font shrinks by the fit ratio so the text stays inside its box.
func drawText(doc *fpdf.Fpdf, text plan.TextOp, pageHeight float64) {
	size := text.Size
	lineHeight := text.LineHeight
	if text.FitRatio > 1 {
		size /= text.FitRatio
		lineHeight /= text.FitRatio
	}

	style := ""
	if text.Weight == model.WeightBold {
		style = "B"
	}
	doc.SetFont(coreFonts[text.Class], style, size)

	r, g, b := hexChannels(text.Color)
	doc.SetTextColor(r, g, b)

	baseline := pageHeight - text.Y
	for _, paragraph := range strings.Split(text.Text, "\n") {
		for _, line := range wrapLine(doc, paragraph, text.MaxWidth) {
			doc.Text(text.X, baseline, line)
			baseline += lineHeight
		}
	}
}

// wrapLine splits an encoded line to the available width. A width the
// splitter cannot work with degrades to drawing the line as-is.
func wrapLine(doc *fpdf.Fpdf, line string, maxWidth float64) []string {
	encoded, err := cp1252.String(line)
	if err != nil {
		encoded = line
	}
	if encoded == "" || maxWidth <= 0 {
		return []string{encoded}
	}
	return doc.SplitText(encoded, maxWidth)
}

// hexChannels parses a "#rrggbb" color, tolerating the short "#rgb"
// form, and falls back to the default fill on malformed input
func hexChannels(hex string) (r, g, b int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return hexChannels(model.DefaultFill)
	}

	values := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return hexChannels(model.DefaultFill)
		}
		values[i] = int(v)
	}
	return values[0], values[1], values[2]
}
