// Package carousel implements the promotional carousel engine: slide
// navigation, timed rotation, swipe gestures and the add-to-cart flow.
//
// A Carousel is one rendered carousel instance. Every event (ticks, touches,
// clicks) is applied under the instance lock, one at a time.
package carousel

import (
	"context"
	"sync"
	"time"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Navigation causes reported to the Observer.
const (
	CauseAuto   = "auto"
	CauseManual = "manual"
	CauseSwipe  = "swipe"
	CauseDot    = "dot"
)

// DataSource supplies the items and settings of a carousel.
type DataSource interface {
	Fetch(ctx context.Context) (model.Feed, error)
}

// Observer receives engine events, typically for metrics.
type Observer interface {
	Navigated(kind model.PromotableKind, cause string)
	CartInsertion(kind model.PromotableKind, ok bool)
}

type nopObserver struct{}

func (nopObserver) Navigated(model.PromotableKind, string)   {}
func (nopObserver) CartInsertion(model.PromotableKind, bool) {}

// Options tunes a Carousel. Zero values select the defaults.
type Options struct {
	Clock          clockwork.Clock
	SwipeThreshold float64
	MaxQuantity    int
	SuccessDisplay time.Duration
	Observer       Observer
	Logger         zerolog.Logger
}

// DialogState is a snapshot of the quantity dialog.
type DialogState struct {
	Open        bool            `json:"open"`
	ItemID      string          `json:"itemId,omitempty"`
	Quantity    int             `json:"quantity"`
	MaxQuantity int             `json:"maxQuantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// FeedbackView is a snapshot of the feedback state machine.
type FeedbackView struct {
	State   FeedbackState `json:"state"`
	Message string        `json:"message,omitempty"`
}

// State is a point-in-time view of a carousel.
type State struct {
	ID           uuid.UUID              `json:"id"`
	Kind         model.PromotableKind   `json:"kind"`
	CartID       string                 `json:"cartId"`
	Rendered     bool                   `json:"rendered"`
	Index        int                    `json:"index"`
	Count        int                    `json:"count"`
	AutoRotating bool                   `json:"autoRotating"`
	IntervalMs   int64                  `json:"intervalMs"`
	Settings     model.CarouselSettings `json:"settings"`
	Current      *model.Slide           `json:"current,omitempty"`
	Slides       []model.Slide          `json:"slides"`
	Dialog       DialogState            `json:"dialog"`
	Feedback     FeedbackView           `json:"feedback"`
	Viewer       ViewerState            `json:"viewer"`
	LastAdded    *model.CartLineItem    `json:"lastAdded,omitempty"`
}

// Carousel is one rendered carousel instance.
type Carousel struct {
	mu sync.Mutex

	id       uuid.UUID
	kind     model.PromotableKind
	cartID   string
	clock    clockwork.Clock
	observer Observer
	logger   zerolog.Logger
	adapter  *Adapter

	items    []model.PromotableItem
	settings model.CarouselSettings

	controller Controller
	gesture    *Gesture
	rotator    *Rotator
	dialog     *QuantityDialog
	dialogItem *model.PromotableItem
	feedback   *Feedback
	viewer     *ImageViewer

	lastAdded  *model.CartLineItem
	lastActive time.Time
	closed     bool
}

// New creates an empty carousel of the given kind bound to a cart.
func New(kind model.PromotableKind, cartID string, cart CartAppender, opts Options) *Carousel {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	c := &Carousel{
		id:       uuid.New(),
		kind:     kind,
		cartID:   cartID,
		clock:    opts.Clock,
		observer: opts.Observer,
		gesture:  NewGesture(opts.SwipeThreshold),
		dialog:   NewQuantityDialog(opts.MaxQuantity),
		viewer:   NewImageViewer(),
	}
	c.logger = opts.Logger.With().
		Str("component", "carousel").
		Str("carousel_id", c.id.String()).
		Str("kind", string(kind)).
		Logger()
	c.adapter = NewAdapter(cart, opts.Clock)
	c.rotator = NewRotator(opts.Clock, c.tick)
	c.feedback = NewFeedback(opts.Clock, opts.SuccessDisplay, c.expire)
	c.lastActive = opts.Clock.Now()

	return c
}

// ID returns the carousel identifier.
func (c *Carousel) ID() uuid.UUID {
	return c.id
}

// Kind returns the kind of item the carousel rotates.
func (c *Carousel) Kind() model.PromotableKind {
	return c.kind
}

// LastActive returns the time of the last event applied.
func (c *Carousel) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

// Load replaces the items and settings. Items failing their availability
// predicate are dropped. A change in item count resets the index to 0 and
// reschedules rotation.
func (c *Carousel) Load(feed model.Feed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	items := make([]model.PromotableItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Visible() {
			items = append(items, item)
		}
	}

	c.items = items
	c.settings = feed.Settings
	if c.controller.SetCount(c.visibleCount()) {
		c.logger.Debug().Int("count", c.controller.Count()).Msg("slide count changed, index reset")
	}
	c.configureRotation()
	c.touch()
}

// Next moves to the next slide.
func (c *Carousel) Next() {
	c.navigate(CauseManual, c.controller.Advance)
}

// Previous moves to the previous slide.
func (c *Carousel) Previous() {
	c.navigate(CauseManual, c.controller.Retreat)
}

// GoTo jumps to slide i, as a dot indicator does. Out-of-range is ignored.
func (c *Carousel) GoTo(i int) {
	c.navigate(CauseDot, func() bool { return c.controller.GoTo(i) })
}

// TouchStart begins a swipe at x.
func (c *Carousel) TouchStart(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.gesture.TouchStart(x)
	c.touch()
}

// TouchMove records the current horizontal position of a swipe.
func (c *Carousel) TouchMove(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.gesture.TouchMove(x)
	c.touch()
}

// TouchEnd finishes a swipe and navigates when it crossed the threshold.
func (c *Carousel) TouchEnd() Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return DirectionNone
	}
	c.touch()

	direction := c.gesture.TouchEnd()
	var moved bool
	switch direction {
	case DirectionNext:
		moved = c.controller.Advance()
	case DirectionPrevious:
		moved = c.controller.Retreat()
	}
	if moved {
		c.observer.Navigated(c.kind, CauseSwipe)
	}
	return direction
}

// OpenDialog opens the quantity dialog for the current slide.
func (c *Carousel) OpenDialog() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.rendered() {
		return nil
	}
	c.touch()

	item := c.items[c.controller.Index()]
	slide := item.Slide()
	if !slide.Purchasable || slide.Price == nil {
		return model.ErrNotPurchasable
	}
	if c.feedback.State() == FeedbackLoading {
		return nil
	}

	c.feedback.Reset()
	c.dialogItem = &item
	c.dialog.Open(*slide.Price)
	return nil
}

// Increment raises the dialog quantity by one.
func (c *Carousel) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.dialog.Increment()
	c.touch()
}

// Decrement lowers the dialog quantity by one.
func (c *Carousel) Decrement() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.dialog.Decrement()
	c.touch()
}

// CancelDialog closes the dialog without adding anything.
func (c *Carousel) CancelDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.dialog.Cancel()
	if c.feedback.State() != FeedbackLoading {
		c.feedback.Reset()
		c.dialogItem = nil
	}
	c.touch()
}

// Confirm submits the dialog quantity to the cart. It reports whether a
// submission was started; repeated calls while one is in flight are ignored.
// The outcome is visible through the feedback state.
func (c *Carousel) Confirm(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed || c.dialogItem == nil {
		c.mu.Unlock()
		return false
	}
	quantity, ok := c.dialog.Confirm()
	if !ok || !c.feedback.Submit() {
		c.mu.Unlock()
		return false
	}
	c.dialog.SetBusy(true)
	item := *c.dialogItem
	cartID := c.cartID
	c.touch()
	c.mu.Unlock()

	line, err := c.adapter.Insert(ctx, cartID, item, quantity)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dialog.SetBusy(false)
	c.observer.CartInsertion(c.kind, err == nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("cart_id", cartID).Int("quantity", quantity).Msg("cart insertion failed")
	} else {
		c.lastAdded = &line
		c.logger.Debug().Str("cart_id", cartID).Int("quantity", quantity).Msg("cart line added")
	}
	if c.closed {
		return true
	}
	c.feedback.Complete(err)
	return true
}

// Retry resubmits after a failed insertion.
func (c *Carousel) Retry(ctx context.Context) bool {
	c.mu.Lock()
	failed := c.feedback.State() == FeedbackFailed
	c.mu.Unlock()

	if !failed {
		return false
	}
	return c.Confirm(ctx)
}

// OpenImage shows the current slide's image in the viewer.
func (c *Carousel) OpenImage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.rendered() {
		return
	}
	slide := c.items[c.controller.Index()].Slide()
	if slide.ImageURL == "" {
		return
	}
	c.viewer.Open(slide.ImageURL, slide.Title, slide.Subtitle)
	c.touch()
}

// Viewer applies fn to the image viewer under the instance lock.
func (c *Carousel) Viewer(fn func(v *ImageViewer)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	fn(c.viewer)
	c.touch()
}

// Close stops all timers. A closed carousel ignores further events.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.rotator.Stop()
	c.feedback.Reset()
	c.logger.Debug().Msg("carousel closed")
}

// Closed reports whether Close has run.
func (c *Carousel) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Poll returns the current state and counts as activity, so a client that
// only watches rotation keeps its session alive.
func (c *Carousel) Poll() State {
	c.mu.Lock()
	c.touch()
	c.mu.Unlock()
	return c.Snapshot()
}

// Snapshot returns the current state.
func (c *Carousel) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		ID:           c.id,
		Kind:         c.kind,
		CartID:       c.cartID,
		Rendered:     c.rendered(),
		Index:        c.controller.Index(),
		Count:        c.controller.Count(),
		AutoRotating: c.rotator.Live(),
		IntervalMs:   c.rotator.Interval().Milliseconds(),
		Settings:     c.settings,
		Slides:       make([]model.Slide, 0, len(c.items)),
		Dialog: DialogState{
			Open:        c.dialog.IsOpen(),
			Quantity:    c.dialog.Quantity(),
			MaxQuantity: c.dialog.Max(),
			UnitPrice:   c.dialog.UnitPrice(),
			TotalPrice:  c.dialog.TotalPrice(),
		},
		Feedback: FeedbackView{
			State:   c.feedback.State(),
			Message: c.feedback.Message(),
		},
		Viewer:    c.viewer.State(),
		LastAdded: c.lastAdded,
	}

	for _, item := range c.items {
		state.Slides = append(state.Slides, item.Slide())
	}
	if state.Rendered {
		current := state.Slides[state.Index]
		state.Current = &current
	}
	if c.dialogItem != nil {
		state.Dialog.ItemID = c.dialogItem.Slide().ID.String()
	}

	return state
}

func (c *Carousel) navigate(cause string, move func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.touch()
	if move() {
		c.observer.Navigated(c.kind, cause)
	}
}

func (c *Carousel) tick(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.rotator.Current(generation) {
		return
	}
	if c.controller.Advance() {
		c.observer.Navigated(c.kind, CauseAuto)
	}
}

func (c *Carousel) expire(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.feedback.Expire(generation) {
		c.dialog.Cancel()
		c.dialogItem = nil
	}
}

func (c *Carousel) configureRotation() {
	interval := time.Duration(c.settings.RotationSpeedMs) * time.Millisecond
	c.rotator.Configure(c.settings.Enabled && c.settings.AutoRotate, interval, c.controller.Count())
}

// visibleCount is the number of slides that will actually be drawn.
func (c *Carousel) visibleCount() int {
	if !c.settings.Enabled {
		return 0
	}
	return len(c.items)
}

func (c *Carousel) rendered() bool {
	return c.controller.Rendered()
}

func (c *Carousel) touch() {
	c.lastActive = c.clock.Now()
}
