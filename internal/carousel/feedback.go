package carousel

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultSuccessDisplay is how long the success state is shown.
const DefaultSuccessDisplay = 2000 * time.Millisecond

// FeedbackState is the visible state of an add-to-cart interaction.
type FeedbackState string

const (
	FeedbackIdle    FeedbackState = "idle"
	FeedbackLoading FeedbackState = "loading"
	FeedbackSuccess FeedbackState = "success"
	FeedbackFailed  FeedbackState = "failed"
)

// Feedback sequences idle -> loading -> success -> idle around a cart
// insertion. A failed insertion parks in FeedbackFailed until retried.
//
// Feedback is not safe for concurrent use; the owning Carousel serialises
// access and receives expiry callbacks through onExpire.
type Feedback struct {
	clock    clockwork.Clock
	display  time.Duration
	onExpire func(generation uint64)

	state      FeedbackState
	message    string
	generation uint64
	dispose    Disposer
}

// NewFeedback creates an idle state machine. A non-positive display falls
// back to DefaultSuccessDisplay.
func NewFeedback(clock clockwork.Clock, display time.Duration, onExpire func(generation uint64)) *Feedback {
	if display <= 0 {
		display = DefaultSuccessDisplay
	}
	return &Feedback{
		clock:    clock,
		display:  display,
		onExpire: onExpire,
		state:    FeedbackIdle,
	}
}

// State returns the current state.
func (f *Feedback) State() FeedbackState {
	return f.state
}

// Message returns the failure message while in FeedbackFailed.
func (f *Feedback) Message() string {
	return f.message
}

// Submit starts an insertion. It reports false, changing nothing, unless the
// machine is idle or failed.
func (f *Feedback) Submit() bool {
	if f.state != FeedbackIdle && f.state != FeedbackFailed {
		return false
	}
	f.state = FeedbackLoading
	f.message = ""
	return true
}

// Complete finishes the in-flight insertion. On success the machine returns
// to idle after the display duration.
func (f *Feedback) Complete(err error) {
	if f.state != FeedbackLoading {
		return
	}
	if err != nil {
		f.state = FeedbackFailed
		f.message = err.Error()
		return
	}

	f.state = FeedbackSuccess
	f.cancelTimer()
	generation := f.generation
	f.dispose = after(f.clock, f.display, func() {
		f.onExpire(generation)
	})
}

// Expire moves success back to idle if generation is still current.
func (f *Feedback) Expire(generation uint64) bool {
	if f.state != FeedbackSuccess || generation != f.generation {
		return false
	}
	f.cancelTimer()
	f.state = FeedbackIdle
	return true
}

// Reset cancels any pending timer and returns to idle.
func (f *Feedback) Reset() {
	f.cancelTimer()
	f.state = FeedbackIdle
	f.message = ""
}

func (f *Feedback) cancelTimer() {
	if f.dispose != nil {
		f.dispose()
		f.dispose = nil
	}
	f.generation++
}
