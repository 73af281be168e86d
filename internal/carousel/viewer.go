package carousel

import "math"

const (
	zoomStep = 1.2
	minScale = 0.3
	maxScale = 4.0
)

// Point is a 2D offset in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ViewerState is a snapshot of the image viewer.
type ViewerState struct {
	Open     bool    `json:"open"`
	URL      string  `json:"url,omitempty"`
	Title    string  `json:"title,omitempty"`
	AltText  string  `json:"altText,omitempty"`
	Scale    float64 `json:"scale"`
	Rotation int     `json:"rotation"`
	Offset   Point   `json:"offset"`
}

// ImageViewer is the full-screen image overlay. It shares nothing with the
// rotation state.
type ImageViewer struct {
	state ViewerState
}

// NewImageViewer creates a closed viewer.
func NewImageViewer() *ImageViewer {
	return &ImageViewer{state: ViewerState{Scale: 1}}
}

// Open shows url and resets zoom, rotation and offset.
func (v *ImageViewer) Open(url, title, altText string) {
	v.state = ViewerState{
		Open:    true,
		URL:     url,
		Title:   title,
		AltText: altText,
		Scale:   1,
	}
}

// Close hides the viewer.
func (v *ImageViewer) Close() {
	v.state = ViewerState{Scale: 1}
}

// ZoomIn scales up by one step, capped at 4x.
func (v *ImageViewer) ZoomIn() {
	if v.state.Open {
		v.state.Scale = roundScale(math.Min(v.state.Scale*zoomStep, maxScale))
	}
}

// ZoomOut scales down by one step, floored at 0.3x.
func (v *ImageViewer) ZoomOut() {
	if v.state.Open {
		v.state.Scale = roundScale(math.Max(v.state.Scale/zoomStep, minScale))
	}
}

// Rotate turns the image a quarter clockwise.
func (v *ImageViewer) Rotate() {
	if v.state.Open {
		v.state.Rotation = (v.state.Rotation + 90) % 360
	}
}

// Fit restores 1x scale and recentres the image.
func (v *ImageViewer) Fit() {
	if v.state.Open {
		v.state.Scale = 1
		v.state.Offset = Point{}
	}
}

// Pan moves the image to offset. Panning only applies while zoomed in.
func (v *ImageViewer) Pan(offset Point) bool {
	if !v.state.Open || v.state.Scale <= 1 {
		return false
	}
	v.state.Offset = offset
	return true
}

// State returns a copy of the viewer state.
func (v *ImageViewer) State() ViewerState {
	return v.state
}

func roundScale(s float64) float64 {
	return math.Round(s*1e6) / 1e6
}
