package extract

import (
	"fmt"
	"math"

	"github.com/tsawler/palimpsest/model"
)

// HexColor converts a raw RGB triple into a "#rrggbb" hex string.
// Triples with all channels in [0, 1] are treated as normalized and
// scaled to 0-255; anything else is treated as already byte-ranged.
// Channels are clamped to [0, 255]. A nil or malformed triple falls
// back to the default fill color.
func HexColor(c *RGB) string {
	if c == nil {
		return model.DefaultFill
	}
	if !isFiniteChannel(c.R) || !isFiniteChannel(c.G) || !isFiniteChannel(c.B) {
		return model.DefaultFill
	}

	r, g, b := c.R, c.G, c.B
	if r <= 1 && g <= 1 && b <= 1 {
		r, g, b = r*255, g*255, b*255
	}

	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func isFiniteChannel(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clampByte(f float64) int {
	v := int(math.Round(f))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
