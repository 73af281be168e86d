package handler

import (
	"net/http"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/service"

	"github.com/rs/zerolog"
)

// PromotionHandler serves the public promotions feed and the admin
// promotion endpoints.
type PromotionHandler struct {
	service service.PromotionService
	logger  zerolog.Logger
}

// NewPromotionHandler creates a new promotion handler.
func NewPromotionHandler(service service.PromotionService, logger zerolog.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		logger:  logger.With().Str("handler", "promotion").Logger(),
	}
}

// Feed handles GET /api/promotions requests.
func (h *PromotionHandler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve promotions", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, feed.Response())
}

// List handles GET /api/admin/promotions requests.
func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve promotions", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotions)
}

// GetByID handles GET /api/admin/promotions/{id} requests.
func (h *PromotionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	promotion, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve promotion", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotion)
}

// Create handles POST /api/admin/promotions requests.
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PromotionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	promotion, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create promotion", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, promotion)
}

// Update handles PUT /api/admin/promotions/{id} requests.
func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.PromotionRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	promotion, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "failed to update promotion", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotion)
}

// Delete handles DELETE /api/admin/promotions/{id} requests.
func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete promotion", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /api/admin/promotions/{id}/toggle requests.
func (h *PromotionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	promotion, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to toggle promotion", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, promotion)
}

// GetSettings handles GET /api/admin/promotions/settings requests.
func (h *PromotionHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve promotion settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/promotions/settings requests.
func (h *PromotionHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.PromotionSettings
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "failed to update promotion settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
