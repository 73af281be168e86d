package carousel

// DefaultSwipeThreshold is the minimum horizontal travel, in pixels, that
// counts as a swipe.
const DefaultSwipeThreshold = 50.0

// Direction is the navigation command produced by a finished gesture.
type Direction string

const (
	DirectionNone     Direction = "none"
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// Gesture turns a horizontal touch sequence into a navigation command.
// Vertical motion is not tracked.
type Gesture struct {
	threshold float64
	startX    *float64
	endX      *float64
}

// NewGesture creates a gesture interpreter. A non-positive threshold falls
// back to DefaultSwipeThreshold.
func NewGesture(threshold float64) *Gesture {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Gesture{threshold: threshold}
}

// Threshold returns the swipe distance threshold in pixels.
func (g *Gesture) Threshold() float64 {
	return g.threshold
}

// TouchStart begins a new touch sequence.
func (g *Gesture) TouchStart(x float64) {
	g.startX = &x
	g.endX = nil
}

// TouchMove records the latest horizontal position.
func (g *Gesture) TouchMove(x float64) {
	g.endX = &x
}

// TouchEnd finishes the sequence and clears the recorded coordinates.
func (g *Gesture) TouchEnd() Direction {
	defer g.reset()

	if g.startX == nil || g.endX == nil {
		return DirectionNone
	}

	distance := *g.startX - *g.endX
	switch {
	case distance > g.threshold:
		return DirectionNext
	case distance < -g.threshold:
		return DirectionPrevious
	default:
		return DirectionNone
	}
}

func (g *Gesture) reset() {
	g.startX = nil
	g.endX = nil
}
