package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSubmitOrderBatchCommandIsNotConstructed = errors.New(
		"SubmitOrderBatchCommand must be created via NewSubmitOrderBatchCommand constructor",
	)
	ErrBatchDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrBatchPaymentReferenceIsRequired = errors.New("payment reference is required")
	ErrBatchOrdersAreRequired          = errors.New("at least one vendor order is required")
	ErrBatchItemsAreRequired           = errors.New("at least one item is required per vendor order")
	ErrBatchQuantityIsInvalid          = errors.New("quantity must be greater than 0")
)

// BatchItem is one product line within a vendor order of a checkout batch.
type BatchItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
}

// NewBatchItem creates a validated batch item.
func NewBatchItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (BatchItem, error) {
	if err := errors.Join(productID.Validate(), unitPrice.Validate()); err != nil {
		return BatchItem{}, err
	}
	if quantity <= 0 {
		return BatchItem{}, ErrBatchQuantityIsInvalid
	}

	return BatchItem{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

// ProductID returns the ordered product's identifier.
func (i BatchItem) ProductID() kernel.UUID { return i.productID }

// Quantity returns the ordered quantity.
func (i BatchItem) Quantity() int { return i.quantity }

// UnitPrice returns the unit price captured at submission time.
func (i BatchItem) UnitPrice() kernel.Money { return i.unitPrice }

// BatchOrder groups the items a customer buys from one vendor in a checkout.
type BatchOrder struct {
	vendorID       kernel.UUID
	deliveryCharge kernel.Money
	items          []BatchItem
}

// NewBatchOrder creates a validated per-vendor slice of a checkout batch.
func NewBatchOrder(vendorID kernel.UUID, deliveryCharge kernel.Money, items []BatchItem) (BatchOrder, error) {
	if err := errors.Join(vendorID.Validate(), deliveryCharge.Validate()); err != nil {
		return BatchOrder{}, err
	}
	if len(items) == 0 {
		return BatchOrder{}, ErrBatchItemsAreRequired
	}

	return BatchOrder{vendorID: vendorID, deliveryCharge: deliveryCharge, items: items}, nil
}

// VendorID returns the vendor this slice of the batch belongs to.
func (o BatchOrder) VendorID() kernel.UUID { return o.vendorID }

// DeliveryCharge returns the vendor's delivery charge, zero when free.
func (o BatchOrder) DeliveryCharge() kernel.Money { return o.deliveryCharge }

// Items returns the product lines bought from this vendor.
func (o BatchOrder) Items() []BatchItem { return o.items }

// SubmitOrderBatchCommand represents a customer's checkout: one order per
// vendor in the cart, all staged under a single payment reference before the
// gateway round-trip starts.
type SubmitOrderBatchCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	deliveryAddress  string
	paymentReference string
	orders           []BatchOrder

	guard guard.ConstructorGuard
}

// NewSubmitOrderBatchCommand creates a command to stage a checkout batch.
// Validates the customer reference, a non-empty delivery address and payment
// reference, and at least one vendor order.
func NewSubmitOrderBatchCommand(
	customerID kernel.UUID,
	deliveryAddress string,
	paymentReference string,
	orders []BatchOrder,
) (SubmitOrderBatchCommand, error) {
	batchCommand := SubmitOrderBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setCustomerID(customerID),
		batchCommand.setDeliveryAddress(deliveryAddress),
		batchCommand.setPaymentReference(paymentReference),
		batchCommand.setOrders(orders),
	); err != nil {
		return SubmitOrderBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderBatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderBatchCommandIsNotConstructed)
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitOrderBatchCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the customer address snapshot for the whole batch.
func (c SubmitOrderBatchCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentReference returns the gateway reference the batch is staged under.
func (c SubmitOrderBatchCommand) PaymentReference() string {
	return c.paymentReference
}

// Orders returns the per-vendor slices of the batch.
func (c SubmitOrderBatchCommand) Orders() []BatchOrder {
	return c.orders
}

func (c *SubmitOrderBatchCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderBatchCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrBatchDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *SubmitOrderBatchCommand) setPaymentReference(paymentReference string) error {
	if paymentReference == "" {
		return ErrBatchPaymentReferenceIsRequired
	}

	c.paymentReference = paymentReference
	return nil
}

func (c *SubmitOrderBatchCommand) setOrders(orders []BatchOrder) error {
	if len(orders) == 0 {
		return ErrBatchOrdersAreRequired
	}

	c.orders = orders
	return nil
}
