package handler

import (
	"context"
	"net/http"

	"retiro-storefront/internal/carousel"
	"retiro-storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// withURLParams attaches chi route parameters to req, given as key/value pairs.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) GetMenu(ctx context.Context) (*model.MenuResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuResponse), args.Error(1)
}

// MockPromotionService is a mock implementation of PromotionService.
type MockPromotionService struct {
	mock.Mock
}

func (m *MockPromotionService) Fetch(ctx context.Context) (model.Feed, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Feed), args.Error(1)
}

func (m *MockPromotionService) GetAll(ctx context.Context) ([]model.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promotion), args.Error(1)
}

func (m *MockPromotionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Promotion), args.Error(1)
}

func (m *MockPromotionService) Create(ctx context.Context, req *model.PromotionRequest) (*model.Promotion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Promotion), args.Error(1)
}

func (m *MockPromotionService) Update(ctx context.Context, id uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Promotion), args.Error(1)
}

func (m *MockPromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromotionService) Toggle(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Promotion), args.Error(1)
}

func (m *MockPromotionService) GetSettings(ctx context.Context) (model.PromotionSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.PromotionSettings), args.Error(1)
}

func (m *MockPromotionService) UpdateSettings(ctx context.Context, settings model.PromotionSettings) (model.PromotionSettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(model.PromotionSettings), args.Error(1)
}

// MockOfferService is a mock implementation of OfferService.
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) Fetch(ctx context.Context) (model.Feed, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Feed), args.Error(1)
}

func (m *MockOfferService) GetAll(ctx context.Context) ([]model.ExclusiveOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExclusiveOffer), args.Error(1)
}

func (m *MockOfferService) GetByID(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExclusiveOffer), args.Error(1)
}

func (m *MockOfferService) Create(ctx context.Context, req *model.OfferRequest) (*model.ExclusiveOffer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExclusiveOffer), args.Error(1)
}

func (m *MockOfferService) Update(ctx context.Context, id uuid.UUID, req *model.OfferRequest) (*model.ExclusiveOffer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExclusiveOffer), args.Error(1)
}

func (m *MockOfferService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOfferService) Toggle(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExclusiveOffer), args.Error(1)
}

func (m *MockOfferService) GetSettings(ctx context.Context) (model.OfferSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.OfferSettings), args.Error(1)
}

func (m *MockOfferService) UpdateSettings(ctx context.Context, settings model.OfferSettings) (model.OfferSettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(model.OfferSettings), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddMenuItem(ctx context.Context, cartID string, req *model.AddToCartRequest) (*model.CartLineItem, error) {
	args := m.Called(ctx, cartID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartLineItem), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, cartID string) (*model.CartResponse, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// MockCarouselService is a mock implementation of CarouselService.
type MockCarouselService struct {
	mock.Mock
}

func (m *MockCarouselService) Create(ctx context.Context, req *model.CreateCarouselRequest) (carousel.State, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(carousel.State), args.Error(1)
}

func (m *MockCarouselService) Get(id uuid.UUID) (carousel.State, error) {
	args := m.Called(id)
	return args.Get(0).(carousel.State), args.Error(1)
}

func (m *MockCarouselService) Apply(ctx context.Context, id uuid.UUID, event model.CarouselEvent) (carousel.State, error) {
	args := m.Called(ctx, id, event)
	return args.Get(0).(carousel.State), args.Error(1)
}

func (m *MockCarouselService) Refresh(ctx context.Context, id uuid.UUID) (carousel.State, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(carousel.State), args.Error(1)
}

func (m *MockCarouselService) Close(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
