package layout

import (
	"math"
	"testing"

	"github.com/tsawler/palimpsest/model"
)

func TestLineHeightSingleLine(t *testing.T) {
	line := makeParagraphLine("only line", 50, 100, 14, 12)
	block := model.ParsedBlock{FontSize: 12, Height: 14}

	got := deriveParagraphLineHeight([]model.ParagraphLine{line}, block)

	// Mean of 1.2, 14/12 and 14/12
	want := (model.DefaultLineHeight + 14.0/12 + 14.0/12) / 3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLineHeightMultiLine(t *testing.T) {
	lines := []model.ParagraphLine{
		makeParagraphLine("one", 50, 100, 12, 12),
		makeParagraphLine("two", 50, 115, 12, 12),
		makeParagraphLine("three", 50, 130, 12, 12),
	}
	block := model.ParsedBlock{FontSize: 12, Height: 42}

	got := deriveParagraphLineHeight(lines, block)

	// Average step 15, even spread 14; blend then normalize by font size
	want := 0.5*(15.0/12) + 0.5*(14.0/12)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLineHeightAlwaysClamped(t *testing.T) {
	degenerate := []struct {
		name  string
		lines []model.ParagraphLine
		block model.ParsedBlock
	}{
		{
			"zero font size",
			[]model.ParagraphLine{makeParagraphLine("a", 0, 0, 0, 0)},
			model.ParsedBlock{},
		},
		{
			"negative heights",
			[]model.ParagraphLine{
				{Y: 100, Height: -5, LineHeight: -2},
				{Y: 90, Height: -5},
			},
			model.ParsedBlock{FontSize: 12, Height: -10},
		},
		{
			"non-finite line height",
			[]model.ParagraphLine{{Y: 0, Height: 10, LineHeight: math.Inf(1)}},
			model.ParsedBlock{FontSize: math.NaN(), Height: 10},
		},
		{
			"huge spacing",
			[]model.ParagraphLine{
				makeParagraphLine("a", 0, 0, 12, 12),
				makeParagraphLine("b", 0, 500, 12, 12),
			},
			model.ParsedBlock{FontSize: 12, Height: 512},
		},
		{
			"no lines",
			nil,
			model.ParsedBlock{},
		},
	}

	for _, tt := range degenerate {
		got := deriveParagraphLineHeight(tt.lines, tt.block)
		if got < 1 || got > 3 {
			t.Errorf("%s: line height %v outside [1, 3]", tt.name, got)
		}
		if math.IsNaN(got) {
			t.Errorf("%s: line height is NaN", tt.name)
		}
	}
}

func TestLineHeightNonPositiveStepsFallBack(t *testing.T) {
	// Steps sum to zero; block height spread takes over
	lines := []model.ParagraphLine{
		makeParagraphLine("a", 0, 100, 12, 12),
		makeParagraphLine("b", 0, 100, 12, 12),
	}
	block := model.ParsedBlock{FontSize: 12, Height: 30}

	got := deriveParagraphLineHeight(lines, block)

	// Fallback step 30/1, spread 30/2, blended and normalized, clamped to 3
	want := math.Min(3, 0.5*(30.0/12)+0.5*(15.0/12))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
