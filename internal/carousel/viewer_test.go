package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageViewer_OpenResetsState(t *testing.T) {
	v := NewImageViewer()
	v.Open("a.jpg", "A", "alt a")
	v.ZoomIn()
	v.Rotate()

	v.Open("b.jpg", "B", "alt b")

	state := v.State()
	assert.True(t, state.Open)
	assert.Equal(t, "b.jpg", state.URL)
	assert.Equal(t, 1.0, state.Scale)
	assert.Equal(t, 0, state.Rotation)
}

func TestImageViewer_ZoomBounds(t *testing.T) {
	v := NewImageViewer()
	v.Open("a.jpg", "A", "")

	for i := 0; i < 20; i++ {
		v.ZoomIn()
	}
	assert.Equal(t, 4.0, v.State().Scale)

	for i := 0; i < 40; i++ {
		v.ZoomOut()
	}
	assert.Equal(t, 0.3, v.State().Scale)
}

func TestImageViewer_RotateWraps(t *testing.T) {
	v := NewImageViewer()
	v.Open("a.jpg", "A", "")

	for i := 0; i < 5; i++ {
		v.Rotate()
	}
	assert.Equal(t, 90, v.State().Rotation)
}

func TestImageViewer_PanOnlyWhenZoomed(t *testing.T) {
	v := NewImageViewer()
	v.Open("a.jpg", "A", "")

	assert.False(t, v.Pan(Point{X: 10, Y: 5}))

	v.ZoomIn()
	assert.True(t, v.Pan(Point{X: 10, Y: 5}))
	assert.Equal(t, Point{X: 10, Y: 5}, v.State().Offset)

	v.Fit()
	assert.Equal(t, 1.0, v.State().Scale)
	assert.Equal(t, Point{}, v.State().Offset)
}

func TestImageViewer_ClosedIgnoresControls(t *testing.T) {
	v := NewImageViewer()

	v.ZoomIn()
	v.Rotate()

	state := v.State()
	assert.False(t, state.Open)
	assert.Equal(t, 1.0, state.Scale)
	assert.Equal(t, 0, state.Rotation)

	v.Open("a.jpg", "A", "")
	v.Close()
	assert.False(t, v.State().Open)
}
