package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"retiro-storefront/internal/carousel"
	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Gauge receives the number of live sessions.
type Gauge interface {
	Set(float64)
}

type nopGauge struct{}

func (nopGauge) Set(float64) {}

// CarouselOptions tunes the carousel sessions. Zero values select defaults.
type CarouselOptions struct {
	Clock          clockwork.Clock
	SwipeThreshold float64
	MaxQuantity    int
	SuccessDisplay time.Duration
	IdleTTL        time.Duration
	SweepInterval  time.Duration
	Observer       carousel.Observer
	Sessions       Gauge
}

// Session defaults.
const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// CarouselSessions is the in-memory CarouselService.
type CarouselSessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*carousel.Carousel

	sources map[model.PromotableKind]carousel.DataSource
	cart    carousel.CartAppender
	opts    CarouselOptions
	logger  zerolog.Logger
}

// NewCarouselService creates a session registry. sources maps each carousel
// kind to the data source that feeds it.
func NewCarouselService(
	sources map[model.PromotableKind]carousel.DataSource,
	cart carousel.CartAppender,
	opts CarouselOptions,
	logger zerolog.Logger,
) *CarouselSessions {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Sessions == nil {
		opts.Sessions = nopGauge{}
	}

	return &CarouselSessions{
		sessions: make(map[uuid.UUID]*carousel.Carousel),
		sources:  sources,
		cart:     cart,
		opts:     opts,
		logger:   logger.With().Str("service", "carousel").Logger(),
	}
}

func (s *CarouselSessions) Create(ctx context.Context, req *model.CreateCarouselRequest) (carousel.State, error) {
	if err := req.Validate(); err != nil {
		return carousel.State{}, err
	}

	source, ok := s.sources[req.Kind]
	if !ok {
		return carousel.State{}, model.ValidationError(fmt.Sprintf("no data source for %s", req.Kind))
	}

	feed, err := source.Fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(req.Kind)).Msg("failed to fetch carousel feed")
		return carousel.State{}, fmt.Errorf("failed to fetch carousel feed: %w", err)
	}

	c := carousel.New(req.Kind, req.CartID, s.cart, carousel.Options{
		Clock:          s.opts.Clock,
		SwipeThreshold: s.opts.SwipeThreshold,
		MaxQuantity:    s.opts.MaxQuantity,
		SuccessDisplay: s.opts.SuccessDisplay,
		Observer:       s.opts.Observer,
		Logger:         s.logger,
	})
	c.Load(feed)

	s.mu.Lock()
	s.sessions[c.ID()] = c
	live := len(s.sessions)
	s.mu.Unlock()
	s.opts.Sessions.Set(float64(live))

	s.logger.Info().
		Str("carousel_id", c.ID().String()).
		Str("kind", string(req.Kind)).
		Str("cart_id", req.CartID).
		Int("items", len(feed.Items)).
		Msg("carousel session opened")

	return c.Snapshot(), nil
}

// Get returns the session state. Reading a session keeps it from being swept.
func (s *CarouselSessions) Get(id uuid.UUID) (carousel.State, error) {
	c, err := s.session(id)
	if err != nil {
		return carousel.State{}, err
	}
	return c.Poll(), nil
}

// Apply dispatches one event to the session. Events that do not apply in the
// current state are ignored and the unchanged state is returned.
func (s *CarouselSessions) Apply(ctx context.Context, id uuid.UUID, event model.CarouselEvent) (carousel.State, error) {
	c, err := s.session(id)
	if err != nil {
		return carousel.State{}, err
	}

	switch event.Type {
	case model.EventNext:
		c.Next()
	case model.EventPrevious:
		c.Previous()
	case model.EventGoTo:
		c.GoTo(event.Index)
	case model.EventTouchStart:
		c.TouchStart(event.X)
	case model.EventTouchMove:
		c.TouchMove(event.X)
	case model.EventTouchEnd:
		c.TouchEnd()
	case model.EventDialogOpen:
		if err := c.OpenDialog(); err != nil {
			return carousel.State{}, err
		}
	case model.EventIncrement:
		c.Increment()
	case model.EventDecrement:
		c.Decrement()
	case model.EventConfirm:
		c.Confirm(ctx)
	case model.EventCancel:
		c.CancelDialog()
	case model.EventRetry:
		c.Retry(ctx)
	case model.EventImageOpen:
		c.OpenImage()
	case model.EventImageClose:
		c.Viewer(func(v *carousel.ImageViewer) { v.Close() })
	case model.EventZoomIn:
		c.Viewer(func(v *carousel.ImageViewer) { v.ZoomIn() })
	case model.EventZoomOut:
		c.Viewer(func(v *carousel.ImageViewer) { v.ZoomOut() })
	case model.EventRotateImage:
		c.Viewer(func(v *carousel.ImageViewer) { v.Rotate() })
	case model.EventFitImage:
		c.Viewer(func(v *carousel.ImageViewer) { v.Fit() })
	case model.EventPanImage:
		c.Viewer(func(v *carousel.ImageViewer) { v.Pan(carousel.Point{X: event.X, Y: event.Y}) })
	default:
		return carousel.State{}, model.ValidationError(fmt.Sprintf("unknown event type %q", event.Type))
	}

	return c.Snapshot(), nil
}

// Refresh re-fetches the session feed. The index resets only when the number
// of slides changes.
func (s *CarouselSessions) Refresh(ctx context.Context, id uuid.UUID) (carousel.State, error) {
	c, err := s.session(id)
	if err != nil {
		return carousel.State{}, err
	}

	feed, err := s.sources[c.Kind()].Fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("carousel_id", id.String()).Msg("failed to refresh carousel feed")
		return carousel.State{}, fmt.Errorf("failed to refresh carousel feed: %w", err)
	}

	c.Load(feed)
	return c.Snapshot(), nil
}

func (s *CarouselSessions) Close(id uuid.UUID) error {
	s.mu.Lock()
	c, ok := s.sessions[id]
	delete(s.sessions, id)
	live := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return model.ErrCarouselNotFound
	}

	c.Close()
	s.opts.Sessions.Set(float64(live))
	s.logger.Debug().Str("carousel_id", id.String()).Msg("carousel session closed")
	return nil
}

// Sweep closes sessions idle for longer than the idle TTL and returns how
// many were closed.
func (s *CarouselSessions) Sweep() int {
	cutoff := s.opts.Clock.Now().Add(-s.opts.IdleTTL)

	s.mu.Lock()
	var stale []*carousel.Carousel
	for id, c := range s.sessions {
		if c.LastActive().Before(cutoff) {
			stale = append(stale, c)
			delete(s.sessions, id)
		}
	}
	live := len(s.sessions)
	s.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	if len(stale) > 0 {
		s.opts.Sessions.Set(float64(live))
		s.logger.Info().Int("closed", len(stale)).Int("live", live).Msg("idle carousel sessions swept")
	}

	return len(stale)
}

// Run sweeps idle sessions every sweep interval until ctx is done, then
// closes every remaining session.
func (s *CarouselSessions) Run(ctx context.Context) {
	ticker := s.opts.Clock.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return
		case <-ticker.Chan():
			s.Sweep()
		}
	}
}

// Shutdown closes every session.
func (s *CarouselSessions) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*carousel.Carousel)
	s.mu.Unlock()

	for _, c := range sessions {
		c.Close()
	}
	s.opts.Sessions.Set(0)
	s.logger.Info().Int("closed", len(sessions)).Msg("carousel sessions shut down")
}

func (s *CarouselSessions) session(id uuid.UUID) (*carousel.Carousel, error) {
	s.mu.RLock()
	c, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || c.Closed() {
		return nil, model.ErrCarouselNotFound
	}
	return c, nil
}
