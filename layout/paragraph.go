package layout

import (
	"math"
	"strings"

	"github.com/tsawler/palimpsest/model"
)

// ParagraphConfig holds configuration for paragraph assembly
type ParagraphConfig struct {
	// AlignmentSlack is the minimum left-edge mismatch allowed between
	// consecutive lines of one paragraph (default: 10 page units)
	AlignmentSlack float64

	// AlignmentFontFactor scales the larger of the two lines' font sizes
	// into an alternative, size-proportional alignment allowance
	// (default: 1.5)
	AlignmentFontFactor float64

	// FontSizeTolerance is the maximum font size difference between
	// lines of one paragraph (default: 0.5 points)
	FontSizeTolerance float64

	// GapPadding is added to the larger line height when testing the
	// vertical gap between consecutive lines (default: 18 page units)
	GapPadding float64

	// WidthCalibration widens every flushed block slightly so redrawn
	// text does not wrap a hair earlier than the original (default: 4)
	WidthCalibration float64
}

// DefaultParagraphConfig returns the default paragraph assembly configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		AlignmentSlack:      10.0,
		AlignmentFontFactor: 1.5,
		FontSizeTolerance:   0.5,
		GapPadding:          18.0,
		WidthCalibration:    4.0,
	}
}

// ParagraphAssembler folds consecutive lines into paragraph blocks
type ParagraphAssembler struct {
	config ParagraphConfig
}

// NewParagraphAssembler creates a paragraph assembler with default configuration
func NewParagraphAssembler() *ParagraphAssembler {
	return &ParagraphAssembler{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphAssemblerWithConfig creates a paragraph assembler with custom configuration
func NewParagraphAssemblerWithConfig(config ParagraphConfig) *ParagraphAssembler {
	return &ParagraphAssembler{
		config: config,
	}
}

// Assemble folds lines (sorted top to bottom) into paragraph blocks. A
// line continues the current paragraph only if its left edge, font size,
// fill color, and vertical gap all stay within tolerance and the previous
// line does not end with a period, which is treated as a hard paragraph
// break. A trailing line with no successor still flushes as its own
// one-line paragraph.
func (a *ParagraphAssembler) Assemble(lines []model.ParagraphLine) []model.ParsedBlock {
	if len(lines) == 0 {
		return nil
	}

	blocks := make([]model.ParsedBlock, 0, len(lines))
	current := []model.ParagraphLine{lines[0]}

	for _, line := range lines[1:] {
		if a.continues(current[len(current)-1], line) {
			current = append(current, line)
			continue
		}
		blocks = append(blocks, a.flush(current))
		current = []model.ParagraphLine{line}
	}
	blocks = append(blocks, a.flush(current))

	return blocks
}

// continues reports whether line extends the paragraph ending in prev
func (a *ParagraphAssembler) continues(prev, line model.ParagraphLine) bool {
	maxFont := math.Max(prev.FontSize, line.FontSize)

	alignSlack := math.Max(a.config.AlignmentSlack, a.config.AlignmentFontFactor*maxFont)
	if math.Abs(line.MinX-prev.MinX) > alignSlack {
		return false
	}

	if math.Abs(line.FontSize-prev.FontSize) > a.config.FontSizeTolerance {
		return false
	}

	if line.Fill != prev.Fill {
		return false
	}

	// A sentence-final period is a hard break signal. Abbreviations such
	// as "Dr." are not detected; they split paragraphs too.
	if strings.HasSuffix(strings.TrimSpace(prev.Text), ".") {
		return false
	}

	gapAllowance := math.Max(math.Max(prev.Height, line.Height), maxFont) + a.config.GapPadding
	return line.Y-prev.Y <= gapAllowance
}

// flush turns the accumulated lines into a finalized block
func (a *ParagraphAssembler) flush(lines []model.ParagraphLine) model.ParsedBlock {
	first := lines[0]

	texts := make([]string, 0, len(lines))
	minX, maxX := first.MinX, first.MaxX
	minY := first.Y
	maxY := first.Y + first.Height
	fontSize := first.FontSize

	for _, line := range lines {
		texts = append(texts, line.Text)
		minX = math.Min(minX, line.MinX)
		maxX = math.Max(maxX, line.MaxX)
		minY = math.Min(minY, line.Y)
		maxY = math.Max(maxY, line.Y+line.Height)
		fontSize = math.Max(fontSize, line.FontSize)
	}

	block := model.ParsedBlock{
		Text:       strings.Join(texts, "\n"),
		X:          minX,
		Y:          minY,
		Width:      maxX - minX + a.config.WidthCalibration,
		Height:     maxY - minY,
		FontSize:   fontSize,
		FontFamily: first.FontFamily,
		FontWeight: first.FontWeight,
		Fill:       first.Fill,
	}
	block.LineHeight = deriveParagraphLineHeight(lines, block)

	return block
}
