package model

// SavePayload is the save request submitted by the editing surface: one
// entry per page that carries overlays, in no particular order.
type SavePayload struct {
	Pages []PagePayload `json:"pages"`
}

// PagePayload describes one page's overlays at save time. Width/Height are
// the page's intrinsic dimensions in page units; ViewportWidth and
// ViewportHeight are the pixel dimensions of the viewport the overlay
// geometry was last set against. Rotation is the page's rotation in
// degrees at save time (any multiple of 90, possibly negative).
type PagePayload struct {
	PageNumber     int       `json:"pageNumber"`
	Width          float64   `json:"width"`
	Height         float64   `json:"height"`
	ViewportWidth  float64   `json:"viewportWidth"`
	ViewportHeight float64   `json:"viewportHeight"`
	Rotation       float64   `json:"rotation"`
	Overlays       []Overlay `json:"overlays"`
}
