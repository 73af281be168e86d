package carousel

import (
	"github.com/shopspring/decimal"
)

// DefaultMaxQuantity caps the quantity selectable in one confirmation.
const DefaultMaxQuantity = 20

// QuantityDialog is a bounded counter bound to a unit price.
type QuantityDialog struct {
	open      bool
	busy      bool
	quantity  int
	max       int
	unitPrice decimal.Decimal
}

// NewQuantityDialog creates a closed dialog. A max below 1 falls back to
// DefaultMaxQuantity.
func NewQuantityDialog(max int) *QuantityDialog {
	if max < 1 {
		max = DefaultMaxQuantity
	}
	return &QuantityDialog{max: max, quantity: 1}
}

// Open shows the dialog for a unit price, always starting from quantity 1.
func (d *QuantityDialog) Open(unitPrice decimal.Decimal) {
	d.open = true
	d.busy = false
	d.quantity = 1
	d.unitPrice = unitPrice
}

// IsOpen reports whether the dialog is shown.
func (d *QuantityDialog) IsOpen() bool {
	return d.open
}

// Quantity returns the selected quantity.
func (d *QuantityDialog) Quantity() int {
	return d.quantity
}

// Max returns the quantity cap.
func (d *QuantityDialog) Max() int {
	return d.max
}

// UnitPrice returns the price of one unit.
func (d *QuantityDialog) UnitPrice() decimal.Decimal {
	return d.unitPrice
}

// Increment adds one, up to the cap.
func (d *QuantityDialog) Increment() {
	if !d.open || d.busy {
		return
	}
	d.quantity = min(d.quantity+1, d.max)
}

// Decrement removes one, down to 1.
func (d *QuantityDialog) Decrement() {
	if !d.open || d.busy {
		return
	}
	d.quantity = max(d.quantity-1, 1)
}

// TotalPrice is unit price times quantity, rounded to cents.
func (d *QuantityDialog) TotalPrice() decimal.Decimal {
	return d.unitPrice.Mul(decimal.NewFromInt(int64(d.quantity))).Round(2)
}

// Confirm emits the selected quantity. It reports false when the dialog is
// closed or a previous confirmation is still in flight.
func (d *QuantityDialog) Confirm() (int, bool) {
	if !d.open || d.busy {
		return 0, false
	}
	return d.quantity, true
}

// SetBusy marks a confirmation as in flight.
func (d *QuantityDialog) SetBusy(busy bool) {
	d.busy = busy
}

// Busy reports whether a confirmation is in flight.
func (d *QuantityDialog) Busy() bool {
	return d.busy
}

// Cancel closes the dialog without emitting. Escape and backdrop dismissal
// both end up here.
func (d *QuantityDialog) Cancel() {
	d.open = false
	d.busy = false
	d.quantity = 1
}
