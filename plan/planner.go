package plan

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/palimpsest/font"
	"github.com/tsawler/palimpsest/model"
	"github.com/tsawler/palimpsest/viewport"
)

// MaskOp is an instruction to draw an opaque, borderless rectangle over
// original page content. Coordinates are page units with bottom-up Y:
// X/Y is the rectangle's lower-left corner.
type MaskOp struct {
	X      float64 `json:"rectX"`
	Y      float64 `json:"rectY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextOp is an instruction to draw replacement text on top of a mask.
// X/Y is the first baseline's origin in bottom-up page units.
type TextOp struct {
	X          float64          `json:"x"`
	Y          float64          `json:"y"`
	Size       float64          `json:"size"`
	LineHeight float64          `json:"lineHeight"`
	MaxWidth   float64          `json:"maxWidth"`
	Family     string           `json:"family"`
	Class      font.Class       `json:"-"`
	Weight     model.FontWeight `json:"weight"`
	Color      string           `json:"color"`
	Text       string           `json:"text"`

	// FitRatio is the estimated width of the widest text line over
	// MaxWidth; a writer may shrink the font when it exceeds 1. Zero
	// when no metrics were available.
	FitRatio float64 `json:"-"`
}

// OverlayOp pairs the mask and text instructions for one overlay. The
// mask is always drawn first.
type OverlayOp struct {
	Mask MaskOp `json:"mask"`
	Text TextOp `json:"text"`
}

// PagePlan holds the instructions for one page, with its intrinsic
// dimensions for the writer's benefit.
type PagePlan struct {
	PageNumber int         `json:"pageNumber"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Ops        []OverlayOp `json:"ops"`
}

// Plan is the full set of drawing instructions for one save, pages in
// ascending page-number order.
type Plan struct {
	Pages []PagePlan `json:"pages"`
}

// IsEmpty returns true if no page produced any instruction
func (p *Plan) IsEmpty() bool {
	for _, page := range p.Pages {
		if len(page.Ops) > 0 {
			return false
		}
	}
	return true
}

// PlannerConfig holds the planner's collaborators
type PlannerConfig struct {
	// Logger receives skip diagnostics; nil means no logging
	Logger *zap.Logger

	// Metrics estimates text widths for fit hints; nil disables hints
	Metrics *font.Metrics
}

// Planner computes drawing instructions from a save payload
type Planner struct {
	logger  *zap.Logger
	metrics *font.Metrics
}

// NewPlanner creates a planner with no logging and the shared width
// metrics (fit hints are silently disabled if the embedded faces fail
// to parse).
func NewPlanner() *Planner {
	metrics, _ := font.DefaultMetrics()
	return &Planner{
		logger:  zap.NewNop(),
		metrics: metrics,
	}
}

// NewPlannerWithConfig creates a planner with explicit collaborators
func NewPlannerWithConfig(config PlannerConfig) *Planner {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		logger:  logger,
		metrics: config.Metrics,
	}
}

// Build computes the drawing instructions for a save payload. Pages are
// processed in ascending page-number order; overlays that are empty or
// geometrically degenerate are skipped, never fatal.
func (p *Planner) Build(payload model.SavePayload) *Plan {
	pages := make([]model.PagePayload, len(payload.Pages))
	copy(pages, payload.Pages)
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})

	result := &Plan{}
	for _, page := range pages {
		pagePlan := p.buildPage(page)
		if len(pagePlan.Ops) > 0 {
			result.Pages = append(result.Pages, pagePlan)
		}
	}
	return result
}

// buildPage computes the instructions for one page payload
func (p *Planner) buildPage(page model.PagePayload) PagePlan {
	pagePlan := PagePlan{
		PageNumber: page.PageNumber,
		Width:      page.Width,
		Height:     page.Height,
	}

	if !model.NewRect(0, 0, page.Width, page.Height).IsValid() ||
		!model.NewRect(0, 0, page.ViewportWidth, page.ViewportHeight).IsValid() {
		p.logger.Warn("skipping page with degenerate dimensions",
			zap.Int("page", page.PageNumber),
			zap.Float64("width", page.Width),
			zap.Float64("height", page.Height),
			zap.Float64("viewportWidth", page.ViewportWidth),
			zap.Float64("viewportHeight", page.ViewportHeight),
		)
		return pagePlan
	}

	for _, overlay := range page.Overlays {
		op, ok := p.buildOverlay(page, overlay)
		if !ok {
			continue
		}
		pagePlan.Ops = append(pagePlan.Ops, op)
	}

	return pagePlan
}

// buildOverlay computes one overlay's mask and text instructions.
// Returns false when the overlay must be skipped.
func (p *Planner) buildOverlay(page model.PagePayload, overlay model.Overlay) (OverlayOp, bool) {
	if strings.TrimSpace(overlay.Text) == "" {
		return OverlayOp{}, false
	}

	ratios := viewport.RectToRatios(overlay.Bounds(), page.ViewportWidth, page.ViewportHeight)
	if !ratios.IsValid() {
		p.logger.Debug("skipping overlay with degenerate geometry",
			zap.Int("page", page.PageNumber),
			zap.String("overlay", overlay.ID),
			zap.Float64("widthRatio", ratios.Width),
			zap.Float64("heightRatio", ratios.Height),
		)
		return OverlayOp{}, false
	}

	// Current geometry in page units, top-down.
	geo := ratios.ToRect(page.Width, page.Height)

	// Mask where the original content sat; fall back to the overlay's
	// current geometry when it was never captured.
	mask := geo
	if overlay.Original != nil {
		mask = viewport.ReplayBounds(*overlay.Original, page.Rotation, page.Width, page.Height)
		if !mask.IsValid() {
			p.logger.Debug("skipping overlay with degenerate bounds snapshot",
				zap.Int("page", page.PageNumber),
				zap.String("overlay", overlay.ID),
				zap.Float64("widthRatio", overlay.Original.WidthRatio),
				zap.Float64("heightRatio", overlay.Original.HeightRatio),
			)
			return OverlayOp{}, false
		}
	}

	scaledFontSize := overlay.FontSize * (page.Height / page.ViewportHeight)

	lineHeightRatio := overlay.LineHeight
	if !isUsableRatio(lineHeightRatio) {
		lineHeightRatio = model.DefaultLineHeight
	}

	family := overlay.FontFamily
	class := font.ClassFor(family)

	op := OverlayOp{
		Mask: MaskOp{
			X:      mask.X,
			Y:      page.Height - (mask.Y + mask.Height),
			Width:  mask.Width,
			Height: mask.Height,
		},
		Text: TextOp{
			X:          geo.X,
			Y:          page.Height - (geo.Y + scaledFontSize),
			Size:       scaledFontSize,
			LineHeight: scaledFontSize * lineHeightRatio,
			MaxWidth:   geo.Width,
			Family:     family,
			Class:      class,
			Weight:     overlay.FontWeight,
			Color:      overlay.Fill,
			Text:       overlay.Text,
		},
	}
	op.Text.FitRatio = p.fitRatio(op.Text)

	return op, true
}

// fitRatio estimates how the widest text line compares to the available
// width. Zero when no estimate can be made.
func (p *Planner) fitRatio(text TextOp) float64 {
	if p.metrics == nil || text.MaxWidth <= 0 {
		return 0
	}

	widest := 0.0
	for _, line := range strings.Split(text.Text, "\n") {
		w := p.metrics.EstimateWidth(line, text.Class, text.Weight, text.Size)
		if w > widest {
			widest = w
		}
	}
	return widest / text.MaxWidth
}

// isUsableRatio reports whether a line-height ratio is finite and positive
func isUsableRatio(r float64) bool {
	return r > 0 && r < 1e6
}
