package plan

import (
	"math"
	"testing"

	"github.com/tsawler/palimpsest/model"
)

// makePage creates a page payload whose viewport matches the page size,
// so ratio scaling is the identity unless a test says otherwise
func makePage(number int, overlays ...model.Overlay) model.PagePayload {
	return model.PagePayload{
		PageNumber:     number,
		Width:          600,
		Height:         800,
		ViewportWidth:  600,
		ViewportHeight: 800,
		Rotation:       0,
		Overlays:       overlays,
	}
}

// makeOverlay creates a plain text overlay
func makeOverlay(id, text string, left, top, width, height float64) model.Overlay {
	return model.Overlay{
		ID:         id,
		Text:       text,
		Left:       left,
		Top:        top,
		Width:      width,
		Height:     height,
		FontSize:   12,
		FontFamily: "Arial",
		FontWeight: model.WeightNormal,
		LineHeight: 1.2,
		Fill:       "#1a1a1a",
		Opacity:    1,
	}
}

func TestPlannerBasicOverlay(t *testing.T) {
	p := NewPlanner()
	payload := model.SavePayload{Pages: []model.PagePayload{
		makePage(1, makeOverlay("ov-1", "replacement", 100, 80, 200, 40)),
	}}

	plan := p.Build(payload)
	if len(plan.Pages) != 1 || len(plan.Pages[0].Ops) != 1 {
		t.Fatalf("Expected 1 page with 1 op, got %+v", plan)
	}

	op := plan.Pages[0].Ops[0]

	// Identity viewport: page-space geometry equals overlay geometry,
	// converted to bottom-up Y
	if op.Mask.X != 100 || op.Mask.Width != 200 || op.Mask.Height != 40 {
		t.Errorf("Unexpected mask geometry: %+v", op.Mask)
	}
	if op.Mask.Y != 800-(80+40) {
		t.Errorf("Expected mask Y %v, got %v", 800-(80+40), op.Mask.Y)
	}

	if op.Text.X != 100 {
		t.Errorf("Expected text X 100, got %v", op.Text.X)
	}
	if op.Text.Y != 800-(80+12) {
		t.Errorf("Expected baseline Y %v, got %v", 800-(80+12), op.Text.Y)
	}
	if op.Text.Size != 12 {
		t.Errorf("Expected size 12, got %v", op.Text.Size)
	}
	if math.Abs(op.Text.LineHeight-14.4) > 1e-9 {
		t.Errorf("Expected line height 14.4, got %v", op.Text.LineHeight)
	}
	if op.Text.MaxWidth != 200 {
		t.Errorf("Expected max width 200, got %v", op.Text.MaxWidth)
	}
	if op.Text.Color != "#1a1a1a" || op.Text.Text != "replacement" {
		t.Errorf("Unexpected text op: %+v", op.Text)
	}
}

func TestPlannerScalesViewportToPage(t *testing.T) {
	p := NewPlanner()
	page := model.PagePayload{
		PageNumber:     1,
		Width:          600,
		Height:         800,
		ViewportWidth:  1200, // viewer at 2x zoom
		ViewportHeight: 1600,
		Overlays: []model.Overlay{
			makeOverlay("ov-1", "text", 200, 160, 400, 80),
		},
	}
	page.Overlays[0].FontSize = 24

	plan := p.Build(model.SavePayload{Pages: []model.PagePayload{page}})
	if plan.IsEmpty() {
		t.Fatal("Expected a non-empty plan")
	}

	op := plan.Pages[0].Ops[0]
	if op.Mask.X != 100 || op.Mask.Width != 200 || op.Mask.Height != 40 {
		t.Errorf("Expected halved geometry, got %+v", op.Mask)
	}
	// Font scales by pageHeight/viewportHeight = 0.5
	if op.Text.Size != 12 {
		t.Errorf("Expected scaled font size 12, got %v", op.Text.Size)
	}
}

func TestPlannerSkipsEmptyText(t *testing.T) {
	p := NewPlanner()
	payload := model.SavePayload{Pages: []model.PagePayload{
		makePage(1,
			makeOverlay("ov-1", "   ", 100, 80, 200, 40),
			makeOverlay("ov-2", "", 100, 200, 200, 40),
		),
	}}

	if plan := p.Build(payload); !plan.IsEmpty() {
		t.Errorf("Expected empty plan for blank overlays, got %+v", plan)
	}
}

func TestPlannerSkipsDegenerateGeometry(t *testing.T) {
	p := NewPlanner()

	zeroWidth := makeOverlay("ov-1", "text", 100, 80, 0, 40)
	negHeight := makeOverlay("ov-2", "text", 100, 80, 200, -5)
	nanLeft := makeOverlay("ov-3", "text", math.NaN(), 80, 200, 40)

	payload := model.SavePayload{Pages: []model.PagePayload{
		makePage(1, zeroWidth, negHeight, nanLeft),
	}}

	if plan := p.Build(payload); !plan.IsEmpty() {
		t.Errorf("Expected all degenerate overlays skipped, got %+v", plan)
	}
}

func TestPlannerSkipsDegenerateSnapshot(t *testing.T) {
	p := NewPlanner()

	overlay := makeOverlay("ov-1", "text", 100, 80, 200, 40)
	overlay.Original = &model.OriginalBounds{
		LeftRatio:   0.1,
		TopRatio:    0.1,
		WidthRatio:  0, // degenerate
		HeightRatio: 0.05,
	}

	payload := model.SavePayload{Pages: []model.PagePayload{makePage(1, overlay)}}
	if plan := p.Build(payload); !plan.IsEmpty() {
		t.Errorf("Expected overlay with zero width ratio skipped, got %+v", plan)
	}
}

func TestPlannerSkipsMissingViewport(t *testing.T) {
	p := NewPlanner()
	page := makePage(1, makeOverlay("ov-1", "text", 100, 80, 200, 40))
	page.ViewportWidth = 0
	page.ViewportHeight = 0

	if plan := p.Build(model.SavePayload{Pages: []model.PagePayload{page}}); !plan.IsEmpty() {
		t.Errorf("Expected page without viewport skipped, got %+v", plan)
	}
}

func TestPlannerMaskFromSnapshotReplay(t *testing.T) {
	p := NewPlanner()

	// Captured at rotation 0; page has since been rotated to 90.
	overlay := makeOverlay("ov-1", "text", 100, 80, 200, 40)
	overlay.Original = &model.OriginalBounds{
		LeftRatio:       0.1,
		TopRatio:        0.1,
		WidthRatio:      0.2,
		HeightRatio:     0.05,
		CaptureRotation: 0,
	}

	page := makePage(1, overlay)
	page.Rotation = 90

	plan := p.Build(model.SavePayload{Pages: []model.PagePayload{page}})
	if plan.IsEmpty() {
		t.Fatal("Expected a non-empty plan")
	}

	op := plan.Pages[0].Ops[0]

	// Ratio square rotates to (0.85, 0.1, 0.05, 0.2) and scales to the
	// page's 600x800, then converts to bottom-up Y
	wantX := 0.85 * 600
	wantTop := 0.1 * 800
	wantW := 0.05 * 600
	wantH := 0.2 * 800
	if math.Abs(op.Mask.X-wantX) > 1e-9 || math.Abs(op.Mask.Width-wantW) > 1e-9 ||
		math.Abs(op.Mask.Height-wantH) > 1e-9 {
		t.Errorf("Unexpected replayed mask: %+v", op.Mask)
	}
	if math.Abs(op.Mask.Y-(800-(wantTop+wantH))) > 1e-9 {
		t.Errorf("Expected mask Y %v, got %v", 800-(wantTop+wantH), op.Mask.Y)
	}

	// The text still draws at the overlay's current geometry
	if op.Text.X != 100 {
		t.Errorf("Expected text X 100, got %v", op.Text.X)
	}
}

func TestPlannerPagesAscending(t *testing.T) {
	p := NewPlanner()
	payload := model.SavePayload{Pages: []model.PagePayload{
		makePage(3, makeOverlay("a", "x", 10, 10, 50, 20)),
		makePage(1, makeOverlay("b", "y", 10, 10, 50, 20)),
		makePage(2, makeOverlay("c", "z", 10, 10, 50, 20)),
	}}

	plan := p.Build(payload)
	if len(plan.Pages) != 3 {
		t.Fatalf("Expected 3 pages, got %d", len(plan.Pages))
	}
	for i, want := range []int{1, 2, 3} {
		if plan.Pages[i].PageNumber != want {
			t.Errorf("Page %d: expected number %d, got %d", i, want, plan.Pages[i].PageNumber)
		}
	}
}

func TestPlannerLineHeightDefault(t *testing.T) {
	p := NewPlanner()

	overlay := makeOverlay("ov-1", "text", 100, 80, 200, 40)
	overlay.LineHeight = math.Inf(1)

	plan := p.Build(model.SavePayload{Pages: []model.PagePayload{makePage(1, overlay)}})
	if plan.IsEmpty() {
		t.Fatal("Expected a non-empty plan")
	}

	op := plan.Pages[0].Ops[0]
	if math.Abs(op.Text.LineHeight-12*model.DefaultLineHeight) > 1e-9 {
		t.Errorf("Expected default line height %v, got %v", 12*model.DefaultLineHeight, op.Text.LineHeight)
	}
}

func TestPlannerFitRatio(t *testing.T) {
	p := NewPlanner()

	narrow := makeOverlay("ov-1", "a rather long run of replacement text", 100, 80, 30, 40)
	wide := makeOverlay("ov-2", "hi", 100, 200, 400, 40)

	plan := p.Build(model.SavePayload{Pages: []model.PagePayload{makePage(1, narrow, wide)}})
	if len(plan.Pages) != 1 || len(plan.Pages[0].Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %+v", plan)
	}

	if fit := plan.Pages[0].Ops[0].Text.FitRatio; fit <= 1 {
		t.Errorf("Expected overflow fit ratio > 1 for narrow box, got %v", fit)
	}
	if fit := plan.Pages[0].Ops[1].Text.FitRatio; fit <= 0 || fit >= 1 {
		t.Errorf("Expected comfortable fit ratio in (0, 1), got %v", fit)
	}
}
