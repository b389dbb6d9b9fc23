package layout

import (
	"math"

	"github.com/tsawler/palimpsest/model"
)

// Line-height ratios are clamped into this range; anything outside it is
// a measurement artifact, not a plausible typographic value.
const (
	minLineHeight = 1.0
	maxLineHeight = 3.0
)

// deriveParagraphLineHeight estimates the paragraph's line-height ratio
// from its constituent lines.
//
// Single-line paragraphs average the line's own ratio, its height over
// font size, and the block height over font size, counting only finite,
// positive candidates and falling back to the default when none remain.
// Multi-line paragraphs blend the average vertical step between
// consecutive lines with the block height spread evenly over the lines,
// both normalized by font size, 50/50. The result is always clamped to
// [1, 3].
func deriveParagraphLineHeight(lines []model.ParagraphLine, block model.ParsedBlock) float64 {
	if len(lines) == 0 {
		return model.DefaultLineHeight
	}

	if len(lines) == 1 {
		return clampLineHeight(singleLineHeight(lines[0], block))
	}
	return clampLineHeight(multiLineHeight(lines, block))
}

// singleLineHeight averages the usable ratio candidates of a one-line block
func singleLineHeight(line model.ParagraphLine, block model.ParsedBlock) float64 {
	candidates := []float64{line.LineHeight}
	if block.FontSize > 0 {
		candidates = append(candidates,
			line.Height/block.FontSize,
			block.Height/block.FontSize,
		)
	}

	sum, count := 0.0, 0
	for _, c := range candidates {
		if isUsableRatio(c) {
			sum += c
			count++
		}
	}
	if count == 0 {
		return model.DefaultLineHeight
	}
	return sum / float64(count)
}

// multiLineHeight blends the measured inter-line step with the block's
// even line spread
func multiLineHeight(lines []model.ParagraphLine, block model.ParsedBlock) float64 {
	if block.FontSize <= 0 {
		return model.DefaultLineHeight
	}

	stepSum := 0.0
	for i := 1; i < len(lines); i++ {
		stepSum += lines[i].Y - lines[i-1].Y
	}
	avgStep := stepSum / float64(len(lines)-1)
	if avgStep <= 0 {
		avgStep = block.Height / float64(len(lines)-1)
	}

	evenSpread := block.Height / float64(len(lines))
	blended := 0.5*(avgStep/block.FontSize) + 0.5*(evenSpread/block.FontSize)

	return blended
}

// clampLineHeight forces a ratio into the plausible range, mapping
// non-finite values to the default first
func clampLineHeight(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = model.DefaultLineHeight
	}
	if ratio < minLineHeight {
		return minLineHeight
	}
	if ratio > maxLineHeight {
		return maxLineHeight
	}
	return ratio
}

// isUsableRatio reports whether a candidate ratio is finite and positive
func isUsableRatio(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}
