package handler

import (
	"net/http"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler handles shared cart requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/carts/{cartID} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Get(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Add handles POST /api/carts/{cartID} requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	line, err := h.service.AddMenuItem(r.Context(), chi.URLParam(r, "cartID"), &req)
	if err != nil {
		writeServiceError(w, err, "failed to add item to cart", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, line)
}

// Clear handles DELETE /api/carts/{cartID} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), chi.URLParam(r, "cartID")); err != nil {
		writeServiceError(w, err, "failed to clear cart", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
