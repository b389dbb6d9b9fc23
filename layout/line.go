package layout

import (
	"math"
	"sort"

	"github.com/tsawler/palimpsest/model"
)

// LineConfig holds configuration for line clustering
type LineConfig struct {
	// YTolerance is the maximum distance between an item's top and a
	// line's representative top for the item to join that line
	// (default: 3 page units)
	YTolerance float64
}

// DefaultLineConfig returns the default line clustering configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 3.0,
	}
}

// LineClusterer groups text items into lines by vertical proximity.
// Clustering runs on un-merged characters; word merging happens per
// formed line afterwards.
type LineClusterer struct {
	config LineConfig
}

// NewLineClusterer creates a line clusterer with default configuration
func NewLineClusterer() *LineClusterer {
	return &LineClusterer{
		config: DefaultLineConfig(),
	}
}

// NewLineClustererWithConfig creates a line clusterer with custom configuration
func NewLineClustererWithConfig(config LineConfig) *LineClusterer {
	return &LineClusterer{
		config: config,
	}
}

// Cluster groups items into lines. Each item joins the first existing
// line whose representative top is within the Y tolerance, otherwise it
// starts a new line. Lines are returned sorted by top ascending, items
// within each line sorted by X ascending. The input slice is not
// modified.
func (c *LineClusterer) Cluster(items []model.TextItem) []model.Line {
	if len(items) == 0 {
		return nil
	}

	var lines []model.Line
	for _, item := range items {
		idx := -1
		for i := range lines {
			if math.Abs(item.Y-lines[i].Y) <= c.config.YTolerance {
				idx = i
				break
			}
		}
		if idx < 0 {
			lines = append(lines, model.Line{Y: item.Y})
			idx = len(lines) - 1
		}
		lines[idx].Items = append(lines[idx].Items, item)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Y < lines[j].Y
	})
	for i := range lines {
		items := lines[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].X < items[b].X
		})
	}

	return lines
}
