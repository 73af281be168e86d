package handler

import (
	"encoding/json"
	"net/http"

	"retiro-storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto an HTTP response. Domain errors
// keep their code and message; anything else is reported as an internal error
// with the fallback message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	if de, ok := model.AsDomainError(err); ok {
		writeError(w, statusFor(de.Code), de.Code, de.Message, logger)
		return
	}
	logger.Error().Err(err).Msg(fallback)
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeMenuItemNotFound,
		model.ErrCodePromotionNotFound,
		model.ErrCodeOfferNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeCarouselNotFound:
		return http.StatusNotFound
	case model.ErrCodeNotPurchasable:
		return http.StatusUnprocessableEntity
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON reads the request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// pathID parses the uuid path parameter name, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, name+" is required", logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid "+name+" format", logger)
		return uuid.Nil, false
	}
	return id, true
}
