package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_FAILED"
	ErrCodeInvalidPromoCode  = "INVALID_PROMO_CODE"
	ErrCodeInvalidPromoLen   = "INVALID_PROMO_LENGTH"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeMenuItemNotFound  = "MENU_ITEM_NOT_FOUND"
	ErrCodePromotionNotFound = "PROMOTION_NOT_FOUND"
	ErrCodeOfferNotFound     = "OFFER_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeCarouselNotFound  = "CAROUSEL_NOT_FOUND"
	ErrCodeNotPurchasable    = "NOT_PURCHASABLE"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidSetting    = "INVALID_SETTING"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that maps onto a stable error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ValidationError returns a domain error carrying a field-level validation message.
func ValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// AsDomainError unwraps err into a *DomainError when it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrInvalidPromoCode   = NewDomainError(ErrCodeInvalidPromoCode, "Promo code does not match an active promotion")
	ErrInvalidPromoLength = NewDomainError(ErrCodeInvalidPromoLen, "Promo code must be between 4 and 20 characters")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and the maximum per order")
	ErrMenuItemNotFound   = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrPromotionNotFound  = NewDomainError(ErrCodePromotionNotFound, "Promotion not found")
	ErrOfferNotFound      = NewDomainError(ErrCodeOfferNotFound, "Exclusive offer not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCarouselNotFound   = NewDomainError(ErrCodeCarouselNotFound, "Carousel session not found")
	ErrNotPurchasable     = NewDomainError(ErrCodeNotPurchasable, "Item cannot be added to the cart")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidSetting     = NewDomainError(ErrCodeInvalidSetting, "Setting value is invalid")
)
