package handler

import (
	"net/http"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/service"

	"github.com/rs/zerolog"
)

// OfferHandler serves the public exclusive offers feed and the admin
// offer endpoints.
type OfferHandler struct {
	service service.OfferService
	logger  zerolog.Logger
}

// NewOfferHandler creates a new exclusive offer handler.
func NewOfferHandler(service service.OfferService, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger.With().Str("handler", "offer").Logger(),
	}
}

// Feed handles GET /api/offers requests.
func (h *OfferHandler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve offers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, feed.Response())
}

// List handles GET /api/admin/offers requests.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve offers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// GetByID handles GET /api/admin/offers/{id} requests.
func (h *OfferHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	offer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve offer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// Create handles POST /api/admin/offers requests.
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	offer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create offer", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

// Update handles PUT /api/admin/offers/{id} requests.
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.OfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	offer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "failed to update offer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// Delete handles DELETE /api/admin/offers/{id} requests.
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete offer", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /api/admin/offers/{id}/toggle requests, flipping availability.
func (h *OfferHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	offer, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to toggle offer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// GetSettings handles GET /api/admin/offers/settings requests.
func (h *OfferHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve offer settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/offers/settings requests.
func (h *OfferHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.OfferSettings
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "failed to update offer settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
