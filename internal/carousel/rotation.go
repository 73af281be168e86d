package carousel

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Rotator keeps at most one rotation ticker alive for a carousel.
//
// Rotator is not safe for concurrent use; the owning Carousel serialises
// access. Ticks are delivered to onTick together with the generation that
// scheduled them so the owner can drop ticks from a disposed schedule.
type Rotator struct {
	clock  clockwork.Clock
	onTick func(generation uint64)

	enabled  bool
	interval time.Duration
	count    int

	generation uint64
	dispose    Disposer
}

// NewRotator creates an idle rotator.
func NewRotator(clock clockwork.Clock, onTick func(generation uint64)) *Rotator {
	return &Rotator{
		clock:  clock,
		onTick: onTick,
	}
}

// Configure applies new rotation parameters. Any change cancels the live
// ticker; a new one is scheduled when rotation is enabled, the interval is
// positive and there is more than one slide.
func (r *Rotator) Configure(enabled bool, interval time.Duration, count int) {
	if r.dispose != nil && enabled == r.enabled && interval == r.interval && count == r.count {
		return
	}

	r.Stop()
	r.enabled = enabled
	r.interval = interval
	r.count = count

	if !enabled || interval <= 0 || count <= 1 {
		return
	}

	generation := r.generation
	r.dispose = every(r.clock, interval, func() {
		r.onTick(generation)
	})
}

// Stop cancels the live ticker, if any.
func (r *Rotator) Stop() {
	if r.dispose != nil {
		r.dispose()
		r.dispose = nil
	}
	r.generation++
}

// Live reports whether a ticker is scheduled.
func (r *Rotator) Live() bool {
	return r.dispose != nil
}

// Current reports whether generation belongs to the live ticker.
func (r *Rotator) Current(generation uint64) bool {
	return r.dispose != nil && generation == r.generation
}

// Interval returns the configured rotation interval.
func (r *Rotator) Interval() time.Duration {
	return r.interval
}
