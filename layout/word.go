package layout

import (
	"strings"

	"github.com/tsawler/palimpsest/model"
)

// WordConfig holds configuration for word merging
type WordConfig struct {
	// GapRatio is the horizontal gap, as a fraction of the current font
	// size, beyond which the next character belongs to a new word
	// (default: 0.25)
	GapRatio float64
}

// DefaultWordConfig returns the default word merging configuration
func DefaultWordConfig() WordConfig {
	return WordConfig{
		GapRatio: 0.25,
	}
}

// WordMerger groups a line's characters into words. Characters whose
// horizontal gap to the open word stays within GapRatio of the current
// font size are appended to it; a larger gap closes the word and starts
// the next one. The word's bounding box grows to the union of its
// characters.
type WordMerger struct {
	config WordConfig
}

// NewWordMerger creates a word merger with default configuration
func NewWordMerger() *WordMerger {
	return &WordMerger{
		config: DefaultWordConfig(),
	}
}

// NewWordMergerWithConfig creates a word merger with custom configuration
func NewWordMergerWithConfig(config WordConfig) *WordMerger {
	return &WordMerger{
		config: config,
	}
}

// Merge folds a line's items (already sorted left to right) into words.
// Merging an already-merged word is a no-op: a single item with no
// internal gaps comes back unchanged.
func (m *WordMerger) Merge(line model.Line) []model.TextItem {
	if len(line.Items) == 0 {
		return nil
	}

	words := make([]model.TextItem, 0, len(line.Items))
	var current *model.TextItem

	for _, item := range line.Items {
		if current == nil {
			word := item
			current = &word
			continue
		}

		gap := item.X - (current.X + current.Width)
		if gap > m.config.GapRatio*item.FontSize {
			words = append(words, *current)
			word := item
			current = &word
			continue
		}

		appendToWord(current, item)
	}

	if current != nil {
		words = append(words, *current)
	}

	return words
}

// appendToWord merges a character into an open word, growing the word's
// bounding box to the union of both
func appendToWord(word *model.TextItem, item model.TextItem) {
	word.Text += item.Text

	union := word.Bounds().Union(item.Bounds())
	word.X = union.X
	word.Y = union.Y
	word.Width = union.Width
	word.Height = union.Height

	if item.FontSize > word.FontSize {
		word.FontSize = item.FontSize
	}
}

// CollapseLine folds a line's merged words into a single dominant-style
// line record: words joined with single spaces, the line's maximum font
// size and height, and the first word's family, weight, and color.
func CollapseLine(line model.Line, words []model.TextItem) model.ParagraphLine {
	if len(words) == 0 {
		return model.ParagraphLine{Y: line.Y, LineHeight: model.DefaultLineHeight}
	}

	texts := make([]string, 0, len(words))
	minX := words[0].X
	maxX := words[0].X + words[0].Width
	maxHeight := 0.0
	maxFontSize := 0.0

	for _, w := range words {
		texts = append(texts, w.Text)
		if w.X < minX {
			minX = w.X
		}
		if right := w.X + w.Width; right > maxX {
			maxX = right
		}
		if w.Height > maxHeight {
			maxHeight = w.Height
		}
		if w.FontSize > maxFontSize {
			maxFontSize = w.FontSize
		}
	}

	return model.ParagraphLine{
		Text:       strings.Join(texts, " "),
		MinX:       minX,
		MaxX:       maxX,
		Y:          line.Y,
		Height:     maxHeight,
		FontSize:   maxFontSize,
		FontFamily: words[0].FontFamily,
		FontWeight: words[0].FontWeight,
		Fill:       words[0].Fill,
		LineHeight: words[0].LineHeight,
	}
}
