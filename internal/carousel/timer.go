package carousel

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Disposer releases a scheduled timer. Calling it more than once is safe.
type Disposer func()

// every runs fn on each tick of a ticker until the returned disposer runs.
// The ticker is created before every returns.
func every(clock clockwork.Clock, interval time.Duration, fn func()) Disposer {
	ticker := clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// after runs fn once after d unless the returned disposer runs first.
func after(clock clockwork.Clock, d time.Duration, fn func()) Disposer {
	timer := clock.AfterFunc(d, fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			timer.Stop()
		})
	}
}
