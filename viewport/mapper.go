package viewport

import (
	"math"

	"github.com/tsawler/palimpsest/model"
)

// NormalizeRotation folds any raw rotation in degrees into a quarter-turn
// step count in [0, 3]. Degrees are rounded to the nearest multiple of 90
// first, so slightly off inputs normalize cleanly.
func NormalizeRotation(degrees float64) int {
	steps := int(math.Round(degrees/90)) % 4
	return (steps + 4) % 4
}

// RotationDelta returns the quarter-turn steps needed to go from the
// rotation epoch a to epoch b, both in degrees, as a value in [0, 3].
func RotationDelta(fromDegrees, toDegrees float64) int {
	return (NormalizeRotation(toDegrees) - NormalizeRotation(fromDegrees) + 4) % 4
}

// RotateUnitPoint rotates a point on the unit square by the given number
// of quarter turns. Step counts compose by addition mod 4.
func RotateUnitPoint(p model.Point, steps int) model.Point {
	switch ((steps % 4) + 4) % 4 {
	case 1:
		return model.Point{X: 1 - p.Y, Y: p.X}
	case 2:
		return model.Point{X: 1 - p.X, Y: 1 - p.Y}
	case 3:
		return model.Point{X: p.Y, Y: 1 - p.X}
	default:
		return p
	}
}

// Ratios is a rectangle expressed as fractions of a reference space, so
// it can be replayed against any target dimensions.
type Ratios struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// RectToRatios normalizes a pixel rectangle against the given reference
// dimensions.
func RectToRatios(rect model.Rect, refWidth, refHeight float64) Ratios {
	return Ratios{
		Left:   rect.X / refWidth,
		Top:    rect.Y / refHeight,
		Width:  rect.Width / refWidth,
		Height: rect.Height / refHeight,
	}
}

// ToRect scales the ratios back into a concrete rectangle in the target
// dimensions.
func (r Ratios) ToRect(targetWidth, targetHeight float64) model.Rect {
	return model.Rect{
		X:      r.Left * targetWidth,
		Y:      r.Top * targetHeight,
		Width:  r.Width * targetWidth,
		Height: r.Height * targetHeight,
	}
}

// IsValid reports whether the ratios describe a drawable area: all fields
// finite, width and height strictly positive.
func (r Ratios) IsValid() bool {
	for _, f := range []float64{r.Left, r.Top, r.Width, r.Height} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return r.Width > 0 && r.Height > 0
}

// Rotate rotates the ratio rectangle on the unit square by the given
// number of quarter turns and re-bounds the result. Corners map exactly
// onto corners, so the returned ratios are again axis-aligned.
func (r Ratios) Rotate(steps int) Ratios {
	corners := [4]model.Point{
		{X: r.Left, Y: r.Top},
		{X: r.Left + r.Width, Y: r.Top},
		{X: r.Left + r.Width, Y: r.Top + r.Height},
		{X: r.Left, Y: r.Top + r.Height},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := RotateUnitPoint(c, steps)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Ratios{
		Left:   minX,
		Top:    minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// MapRect re-expresses a pixel rectangle captured in one rotated space in
// another: the rectangle is normalized against the source dimensions,
// rotated by the delta between the two rotation epochs (in degrees), and
// scaled to the target dimensions.
func MapRect(rect model.Rect, srcWidth, srcHeight float64, fromDegrees, toDegrees float64, dstWidth, dstHeight float64) model.Rect {
	ratios := RectToRatios(rect, srcWidth, srcHeight)
	rotated := ratios.Rotate(RotationDelta(fromDegrees, toDegrees))
	return rotated.ToRect(dstWidth, dstHeight)
}
