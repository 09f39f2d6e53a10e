package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrVendorDecideOrderCommandIsNotConstructed = errors.New(
	"VendorDecideOrderCommand must be created via NewVendorDecideOrderCommand constructor",
)

// VendorDecideOrderCommand represents a vendor's decision on a paid order:
// accept it for fulfillment or reject it.
type VendorDecideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID
	accept   bool

	guard guard.ConstructorGuard
}

// NewVendorDecideOrderCommand creates a command recording a vendor's decision.
func NewVendorDecideOrderCommand(orderID, vendorID kernel.UUID, accept bool) (VendorDecideOrderCommand, error) {
	decideCommand := VendorDecideOrderCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		decideCommand.setOrderID(orderID),
		decideCommand.setVendorID(vendorID),
	); err != nil {
		return VendorDecideOrderCommand{}, err
	}

	return decideCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VendorDecideOrderCommand) Validate() error {
	return c.guard.Validate(ErrVendorDecideOrderCommandIsNotConstructed)
}

// OrderID returns the order being decided.
func (c VendorDecideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor making the decision.
func (c VendorDecideOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Accept reports whether the vendor accepts (true) or rejects (false).
func (c VendorDecideOrderCommand) Accept() bool {
	return c.accept
}

func (c *VendorDecideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VendorDecideOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
