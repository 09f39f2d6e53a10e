package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// maxLineItemQuantity bounds a single line to keep obviously malformed
// submissions out of the ledger.
const maxLineItemQuantity = 1000

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing one product line of an order:
// a product reference, a positive quantity, and the unit price captured at
// submission time.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// Quantity must lie in [1, 1000]; the unit price must be a constructed Money.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 || quantity > maxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the unit price captured at submission time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity times unit price. Exact, no rounding involved.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulInt(li.quantity)
}
