package handler

import (
	"net/http"

	"retiro-storefront/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler serves the storefront menu.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Get handles GET /api/menu requests.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetMenu(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}
