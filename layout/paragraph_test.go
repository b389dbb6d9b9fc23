package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/palimpsest/model"
)

// makeParagraphLine creates a test line with sensible defaults
func makeParagraphLine(text string, minX, y, height, fontSize float64) model.ParagraphLine {
	return model.ParagraphLine{
		Text:       text,
		MinX:       minX,
		MaxX:       minX + 200,
		Y:          y,
		Height:     height,
		FontSize:   fontSize,
		FontFamily: "Arial",
		FontWeight: model.WeightNormal,
		Fill:       "#000000",
		LineHeight: model.DefaultLineHeight,
	}
}

func TestParagraphAssemblerEmpty(t *testing.T) {
	a := NewParagraphAssembler()
	if blocks := a.Assemble(nil); blocks != nil {
		t.Errorf("Expected nil for empty input, got %v", blocks)
	}
}

func TestParagraphAssemblerMergesAlignedLines(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("first line of text", 50, 100, 12, 12),
		makeParagraphLine("second line of text", 50, 115, 12, 12), // gap 15
	}

	blocks := a.Assemble(lines)
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "first line of text\nsecond line of text" {
		t.Errorf("Unexpected block text: %q", blocks[0].Text)
	}
}

func TestParagraphAssemblerPeriodIsHardBreak(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("first sentence ends.", 50, 100, 12, 12),
		makeParagraphLine("second line of text", 50, 115, 12, 12),
	}

	blocks := a.Assemble(lines)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks (period breaks paragraph), got %d", len(blocks))
	}
}

func TestParagraphAssemblerFontSizeMismatch(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("heading text", 50, 100, 18, 18),
		makeParagraphLine("body text", 50, 120, 12, 12),
	}

	blocks := a.Assemble(lines)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks for differing font sizes, got %d", len(blocks))
	}
}

func TestParagraphAssemblerFillMismatch(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("black text", 50, 100, 12, 12),
		makeParagraphLine("red text", 50, 115, 12, 12),
	}
	lines[1].Fill = "#ff0000"

	blocks := a.Assemble(lines)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks for differing fills, got %d", len(blocks))
	}
}

func TestParagraphAssemblerAlignmentSlack(t *testing.T) {
	a := NewParagraphAssembler()

	// 1.5 x fontSize 12 = 18 beats the 10-unit floor; 17 units is in
	tests := []struct {
		shift      float64
		wantBlocks int
	}{
		{17, 1},
		{19, 2},
	}

	for _, tt := range tests {
		lines := []model.ParagraphLine{
			makeParagraphLine("first line of text", 50, 100, 12, 12),
			makeParagraphLine("second line of text", 50+tt.shift, 115, 12, 12),
		}
		blocks := a.Assemble(lines)
		if len(blocks) != tt.wantBlocks {
			t.Errorf("Shift %v: expected %d blocks, got %d", tt.shift, tt.wantBlocks, len(blocks))
		}
	}
}

func TestParagraphAssemblerVerticalGap(t *testing.T) {
	a := NewParagraphAssembler()

	// Allowance is max(heights, fontSize) + 18 = 30 for 12pt lines
	tests := []struct {
		gap        float64
		wantBlocks int
	}{
		{30, 1},
		{31, 2},
	}

	for _, tt := range tests {
		lines := []model.ParagraphLine{
			makeParagraphLine("first line of text", 50, 100, 12, 12),
			makeParagraphLine("second line of text", 50, 100+tt.gap, 12, 12),
		}
		blocks := a.Assemble(lines)
		if len(blocks) != tt.wantBlocks {
			t.Errorf("Gap %v: expected %d blocks, got %d", tt.gap, tt.wantBlocks, len(blocks))
		}
	}
}

func TestParagraphAssemblerStrayLastLine(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("a paragraph ends here.", 50, 100, 12, 12),
		makeParagraphLine("stray closing line", 50, 400, 12, 12),
	}

	blocks := a.Assemble(lines)
	if len(blocks) != 2 {
		t.Fatalf("Expected stray line to flush as its own block, got %d blocks", len(blocks))
	}
	if blocks[1].Text != "stray closing line" {
		t.Errorf("Unexpected stray block text: %q", blocks[1].Text)
	}
}

func TestParagraphAssemblerBlockGeometry(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("first", 50, 100, 12, 12),
		makeParagraphLine("second", 52, 115, 12, 12),
	}
	lines[0].MaxX = 240
	lines[1].MaxX = 300

	blocks := a.Assemble(lines)
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.X != 50 || b.Y != 100 {
		t.Errorf("Expected origin (50, 100), got (%v, %v)", b.X, b.Y)
	}
	// Width carries the fixed 4-unit calibration pad
	if b.Width != 300-50+4 {
		t.Errorf("Expected width 254, got %v", b.Width)
	}
	if b.Height != 115+12-100 {
		t.Errorf("Expected height 27, got %v", b.Height)
	}
}

func TestParagraphAssemblerDeterministic(t *testing.T) {
	a := NewParagraphAssembler()
	lines := []model.ParagraphLine{
		makeParagraphLine("alpha line", 50, 100, 12, 12),
		makeParagraphLine("beta line", 50, 115, 12, 12),
		makeParagraphLine("gamma heading", 50, 160, 18, 18),
		makeParagraphLine("delta line.", 50, 182, 12, 12),
		makeParagraphLine("epsilon line", 50, 197, 12, 12),
	}

	first := a.Assemble(lines)
	second := a.Assemble(lines)

	if !reflect.DeepEqual(first, second) {
		t.Error("Assembly is not deterministic for identical input")
	}
}
