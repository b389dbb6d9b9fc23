package layout

import "github.com/tsawler/palimpsest/model"

// Analyzer chains line clustering, word merging, and paragraph assembly
// into a single reconstruction pass.
type Analyzer struct {
	clusterer *LineClusterer
	merger    *WordMerger
	assembler *ParagraphAssembler
}

// NewAnalyzer creates an analyzer with default configuration for all
// three passes.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		clusterer: NewLineClusterer(),
		merger:    NewWordMerger(),
		assembler: NewParagraphAssembler(),
	}
}

// NewAnalyzerWithConfig creates an analyzer with custom pass configuration
func NewAnalyzerWithConfig(lineConfig LineConfig, wordConfig WordConfig, paragraphConfig ParagraphConfig) *Analyzer {
	return &Analyzer{
		clusterer: NewLineClustererWithConfig(lineConfig),
		merger:    NewWordMergerWithConfig(wordConfig),
		assembler: NewParagraphAssemblerWithConfig(paragraphConfig),
	}
}

// Blocks reconstructs paragraph blocks from one page's extracted items.
// The pass is deterministic: the same input always yields the same
// blocks, in top-to-bottom order.
func (a *Analyzer) Blocks(items []model.TextItem) []model.ParsedBlock {
	lines := a.clusterer.Cluster(items)
	if len(lines) == 0 {
		return nil
	}

	collapsed := make([]model.ParagraphLine, 0, len(lines))
	for _, line := range lines {
		words := a.merger.Merge(line)
		if len(words) == 0 {
			continue
		}
		collapsed = append(collapsed, CollapseLine(line, words))
	}

	return a.assembler.Assemble(collapsed)
}
