package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retiro-storefront/internal/carousel"
	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCarouselHandler_Create(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockReturn     carousel.State
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"kind":"exclusive-offer","cartId":"cart-1"}`,
			mockReturn:     carousel.State{ID: sessionID, Kind: model.KindOffer, CartID: "cart-1", Rendered: true, Count: 3},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Unknown kind",
			body:           `{"kind":"menu","cartId":"cart-1"}`,
			mockError:      model.ValidationError("kind must be promotion or exclusive-offer"),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCarouselService)
			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateCarouselRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			w := httptest.NewRecorder()
			NewCarouselHandler(mockService, zerolog.Nop()).Create(w, httptest.NewRequest(http.MethodPost, "/api/carousels", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var state carousel.State
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
				assert.Equal(t, sessionID, state.ID)
				assert.Equal(t, 3, state.Count)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCarouselHandler_Apply(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		event          model.CarouselEvent
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Next",
			body:           `{"type":"next"}`,
			event:          model.CarouselEvent{Type: model.EventNext},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GoTo",
			body:           `{"type":"goto","index":2}`,
			event:          model.CarouselEvent{Type: model.EventGoTo, Index: 2},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Touch move",
			body:           `{"type":"touch_move","x":120.5}`,
			event:          model.CarouselEvent{Type: model.EventTouchMove, X: 120.5},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Promotion dialog",
			body:           `{"type":"dialog_open"}`,
			event:          model.CarouselEvent{Type: model.EventDialogOpen},
			mockError:      model.ErrNotPurchasable,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Closed session",
			body:           `{"type":"prev"}`,
			event:          model.CarouselEvent{Type: model.EventPrevious},
			mockError:      model.ErrCarouselNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCarouselService)
			mockService.On("Apply", mock.Anything, id, tt.event).Return(carousel.State{ID: id}, tt.mockError)

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), "id", id.String())
			w := httptest.NewRecorder()

			NewCarouselHandler(mockService, zerolog.Nop()).Apply(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCarouselHandler_Lifecycle(t *testing.T) {
	id := uuid.New()

	mockService := new(MockCarouselService)
	mockService.On("Get", id).Return(carousel.State{ID: id, Index: 1}, nil).Once()
	mockService.On("Refresh", mock.Anything, id).Return(carousel.State{ID: id, Index: 0}, nil).Once()
	mockService.On("Close", id).Return(nil).Once()
	mockService.On("Get", id).Return(carousel.State{}, model.ErrCarouselNotFound).Once()

	h := NewCarouselHandler(mockService, zerolog.Nop())
	request := func(method string) *http.Request {
		return withURLParams(httptest.NewRequest(method, "/", nil), "id", id.String())
	}

	w := httptest.NewRecorder()
	h.Get(w, request(http.MethodGet))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Refresh(w, request(http.MethodPost))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Close(w, request(http.MethodDelete))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.Get(w, request(http.MethodGet))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}
