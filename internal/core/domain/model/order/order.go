package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveryAddressIsRequired is returned when an order is submitted without
	// a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")

	// ErrPaymentReferenceIsRequired is returned when an order is submitted outside
	// a staged checkout batch.
	ErrPaymentReferenceIsRequired = errs.NewValueIsRequiredError("paymentReference")

	// ErrLineItemsAreRequired is returned when an order carries no line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Timestamps carries the per-transition timestamps of an order. CreatedAt is
// always set; the others are nil until the corresponding transition happens.
type Timestamps struct {
	CreatedAt   time.Time
	PaidAt      *time.Time
	DecidedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// Order is the aggregate root of the order ledger. It manages the lifecycle
// of a customer's purchase from one vendor, from Pending submission through
// payment, the vendor's decision, and fulfillment or cancellation.
//
// Invariants:
//   - identity, vendor, and customer references are valid UUIDs
//   - at least one line item; total price equals line totals plus delivery charge
//   - status only moves along the edges defined by Status; terminal states are final
//   - the payment reference never changes after construction
//
// Orders are never deleted: terminal orders are retained for audit.
type Order struct {
	id         kernel.UUID
	vendorID   kernel.UUID
	customerID kernel.UUID

	items           []LineItem
	deliveryCharge  kernel.Money
	totalPrice      kernel.Money
	deliveryAddress string

	// paymentReference correlates all orders staged in one checkout.
	paymentReference string

	status     Status
	timestamps Timestamps

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order for one vendor within a staged checkout.
// The total price is computed here, as line totals plus the delivery charge,
// and is immutable afterwards.
//
// Parameters:
//   - id, vendorID, customerID: entity references (must be valid UUIDs)
//   - items: at least one validated line item
//   - deliveryCharge: zero when the vendor ships for free
//   - deliveryAddress: customer address snapshot (must be non-blank)
//   - paymentReference: the checkout's staged reference (must be non-blank)
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryCharge kernel.Money,
	deliveryAddress string,
	paymentReference string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		vendorID.Validate(),
		customerID.Validate(),
		deliveryCharge.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrLineItemsAreRequired
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}
	if paymentReference == "" {
		return nil, ErrPaymentReferenceIsRequired
	}

	total := deliveryCharge
	for _, li := range items {
		total = total.Add(li.Total())
	}

	return &Order{
		id:               id,
		vendorID:         vendorID,
		customerID:       customerID,
		items:            items,
		deliveryCharge:   deliveryCharge,
		totalPrice:       total,
		deliveryAddress:  deliveryAddress,
		paymentReference: paymentReference,
		status:           Pending,
		timestamps:       Timestamps{CreatedAt: time.Now().UTC()},
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored status, total, and timestamps as-is, validating only
// structural invariants.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryCharge kernel.Money,
	totalPrice kernel.Money,
	deliveryAddress string,
	paymentReference string,
	status Status,
	timestamps Timestamps,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		vendorID.Validate(),
		customerID.Validate(),
		deliveryCharge.Validate(),
		totalPrice.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		vendorID:         vendorID,
		customerID:       customerID,
		items:            items,
		deliveryCharge:   deliveryCharge,
		totalPrice:       totalPrice,
		deliveryAddress:  deliveryAddress,
		paymentReference: paymentReference,
		status:           status,
		timestamps:       timestamps,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the vendor fulfilling the order.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// CustomerID returns the customer who submitted the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order's line items.
func (o *Order) Items() []LineItem {
	return o.items
}

// DeliveryCharge returns the vendor's delivery charge, zero when free.
func (o *Order) DeliveryCharge() kernel.Money {
	return o.deliveryCharge
}

// TotalPrice returns the immutable order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// DeliveryAddress returns the customer address snapshot.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentReference returns the staged checkout reference shared by all
// orders of the same submission.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Timestamps returns the per-transition timestamps.
func (o *Order) Timestamps() Timestamps {
	return o.timestamps
}

// Commission splits the order total into platform commission and vendor net.
// A pure derivation of TotalPrice: re-deriving it at any later time
// reproduces the same value, so it is never stored as mutable state.
func (o *Order) Commission() (commission kernel.Money, net kernel.Money) {
	return o.totalPrice.Commission()
}

// MarkPaid records the reconciled payment.
// Only a Pending order can be marked paid.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.timestamps.PaidAt = &now
	return nil
}

// Accept records the vendor's decision to fulfill a paid order.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.timestamps.DecidedAt = &now
	return nil
}

// Reject records the vendor's decision to decline a paid order. Terminal.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.timestamps.DecidedAt = &now
	return nil
}

// Complete marks fulfillment done on an accepted order. Terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.timestamps.CompletedAt = &now
	return nil
}

// Cancel cancels a non-terminal order. Terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.timestamps.CancelledAt = &now
	return nil
}
