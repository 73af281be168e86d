package router

import (
	"net/http"
	"time"

	"retiro-storefront/internal/handler"
	"retiro-storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Menu      *handler.MenuHandler
	Promotion *handler.PromotionHandler
	Offer     *handler.OfferHandler
	Cart      *handler.CartHandler
	Carousel  *handler.CarouselHandler
	Order     *handler.OrderHandler
}

// Options carries the router dependencies that are not handlers.
type Options struct {
	APIKey         string
	RequestTimeout time.Duration
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Instrument wraps every request, e.g. with Prometheus timing.
	Instrument func(http.Handler) http.Handler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> Logging -> CORS, then per-group API key auth.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	if opts.Instrument != nil {
		r.Use(opts.Instrument)
	}
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", h.Menu.Get)
		r.Get("/promotions", h.Promotion.Feed)
		r.Get("/offers", h.Offer.Feed)

		r.Route("/carts/{cartID}", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Post("/", h.Cart.Add)
			r.Delete("/", h.Cart.Clear)
		})

		r.Route("/carousels", func(r chi.Router) {
			r.Post("/", h.Carousel.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Carousel.Get)
				r.Delete("/", h.Carousel.Close)
				r.Post("/events", h.Carousel.Apply)
				r.Post("/refresh", h.Carousel.Refresh)
			})
		})

		r.Post("/orders", h.Order.Create)
		r.Get("/orders/{id}", h.Order.GetByID)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(opts.APIKey, logger))

			r.Route("/promotions", func(r chi.Router) {
				r.Get("/", h.Promotion.List)
				r.Post("/", h.Promotion.Create)
				r.Get("/settings", h.Promotion.GetSettings)
				r.Put("/settings", h.Promotion.UpdateSettings)
				r.Get("/{id}", h.Promotion.GetByID)
				r.Put("/{id}", h.Promotion.Update)
				r.Delete("/{id}", h.Promotion.Delete)
				r.Post("/{id}/toggle", h.Promotion.Toggle)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", h.Offer.List)
				r.Post("/", h.Offer.Create)
				r.Get("/settings", h.Offer.GetSettings)
				r.Put("/settings", h.Offer.UpdateSettings)
				r.Get("/{id}", h.Offer.GetByID)
				r.Put("/{id}", h.Offer.Update)
				r.Delete("/{id}", h.Offer.Delete)
				r.Post("/{id}/toggle", h.Offer.Toggle)
			})
		})
	})

	return r
}
