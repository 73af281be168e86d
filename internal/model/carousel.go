package model

// Carousel event types accepted by the session API.
const (
	EventNext        = "next"
	EventPrevious    = "prev"
	EventGoTo        = "goto"
	EventTouchStart  = "touch_start"
	EventTouchMove   = "touch_move"
	EventTouchEnd    = "touch_end"
	EventDialogOpen  = "dialog_open"
	EventIncrement   = "increment"
	EventDecrement   = "decrement"
	EventConfirm     = "confirm"
	EventCancel      = "cancel"
	EventRetry       = "retry"
	EventImageOpen   = "image_open"
	EventImageClose  = "image_close"
	EventZoomIn      = "zoom_in"
	EventZoomOut     = "zoom_out"
	EventRotateImage = "rotate"
	EventFitImage    = "fit"
	EventPanImage    = "pan"
)

// CreateCarouselRequest opens a carousel session bound to a cart.
type CreateCarouselRequest struct {
	Kind   PromotableKind `json:"kind"`
	CartID string         `json:"cartId"`
}

// Validate checks the request fields.
func (r *CreateCarouselRequest) Validate() error {
	if r.Kind != KindPromotion && r.Kind != KindOffer {
		return ValidationError("kind must be promotion or exclusive-offer")
	}
	if r.CartID == "" {
		return ValidationError("cartId is required")
	}
	return nil
}

// CarouselEvent is a single user interaction applied to a session.
type CarouselEvent struct {
	Type  string  `json:"type"`
	Index int     `json:"index,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
}

// FeedResponse is the public view of a carousel feed.
type FeedResponse struct {
	Items    []Slide          `json:"items"`
	Settings CarouselSettings `json:"settings"`
}

// Response projects the feed for the public API.
func (f Feed) Response() FeedResponse {
	resp := FeedResponse{Items: make([]Slide, 0, len(f.Items)), Settings: f.Settings}
	for _, item := range f.Items {
		resp.Items = append(resp.Items, item.Slide())
	}
	return resp
}
