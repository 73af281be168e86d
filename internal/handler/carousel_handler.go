package handler

import (
	"net/http"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/service"

	"github.com/rs/zerolog"
)

// CarouselHandler drives carousel sessions over HTTP. Every mutating request
// answers with the session state after the interaction.
type CarouselHandler struct {
	service service.CarouselService
	logger  zerolog.Logger
}

// NewCarouselHandler creates a new carousel handler.
func NewCarouselHandler(service service.CarouselService, logger zerolog.Logger) *CarouselHandler {
	return &CarouselHandler{
		service: service,
		logger:  logger.With().Str("handler", "carousel").Logger(),
	}
}

// Create handles POST /api/carousels requests.
func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCarouselRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	state, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to open carousel", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// Get handles GET /api/carousels/{id} requests.
func (h *CarouselHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	state, err := h.service.Get(id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve carousel", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Apply handles POST /api/carousels/{id}/events requests.
func (h *CarouselHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var event model.CarouselEvent
	if !decodeJSON(w, r, &event, h.logger) {
		return
	}

	state, err := h.service.Apply(r.Context(), id, event)
	if err != nil {
		writeServiceError(w, err, "failed to apply carousel event", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Refresh handles POST /api/carousels/{id}/refresh requests.
func (h *CarouselHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	state, err := h.service.Refresh(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to refresh carousel", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Close handles DELETE /api/carousels/{id} requests.
func (h *CarouselHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.Close(id); err != nil {
		writeServiceError(w, err, "failed to close carousel", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
