package font

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tsawler/palimpsest/model"
)

// refSize is the point size faces are built at; widths measured at this
// size are scaled linearly to the requested size.
const refSize = 100.0

type faceKey struct {
	class Class
	bold  bool
}

// Metrics estimates rendered text widths using the embedded Go fonts as
// stand-ins for each draw class. The proportional Go face stands in for
// both the serif and sans classes; mono uses the Go mono face.
type Metrics struct {
	mu    sync.Mutex // font.Face is not safe for concurrent use
	faces map[faceKey]font.Face
}

// NewMetrics parses the embedded faces once and returns a Metrics.
func NewMetrics() (*Metrics, error) {
	sources := map[faceKey][]byte{
		{ClassSans, false}:  goregular.TTF,
		{ClassSans, true}:   gobold.TTF,
		{ClassSerif, false}: goregular.TTF,
		{ClassSerif, true}:  gobold.TTF,
		{ClassMono, false}:  gomono.TTF,
		{ClassMono, true}:   gomonobold.TTF,
	}

	faces := make(map[faceKey]font.Face, len(sources))
	for key, ttf := range sources {
		parsed, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s face: %w", key.class, err)
		}
		faces[key] = truetype.NewFace(parsed, &truetype.Options{
			Size:    refSize,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}

	return &Metrics{faces: faces}, nil
}

// EstimateWidth returns the approximate rendered width of text at the
// given font size, in the same units as the size.
func (m *Metrics) EstimateWidth(text string, class Class, weight model.FontWeight, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.faces[faceKey{class, weight == model.WeightBold}]
	advance := font.MeasureString(face, text)
	return float64(advance) / 64.0 * size / refSize
}

var (
	defaultMetrics     *Metrics
	defaultMetricsErr  error
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a process-wide Metrics instance, parsing the
// embedded faces on first use.
func DefaultMetrics() (*Metrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = NewMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}
