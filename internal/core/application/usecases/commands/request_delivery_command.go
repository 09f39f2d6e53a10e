package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRequestDeliveryCommandIsNotConstructed = errors.New(
		"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
	)
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
)

// RequestDeliveryCommand represents a vendor's request to have an accepted
// order picked up and delivered.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	vendorID      kernel.UUID
	vendorZone    kernel.Zone
	pickupAddress string

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a command to spawn a delivery task for
// an order. The vendor's zone pools candidate riders; the pickup address is
// snapshotted onto the task.
func NewRequestDeliveryCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	vendorZone kernel.Zone,
	pickupAddress string,
) (RequestDeliveryCommand, error) {
	deliveryCommand := RequestDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setVendorID(vendorID),
		deliveryCommand.setVendorZone(vendorZone),
		deliveryCommand.setPickupAddress(pickupAddress),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// OrderID returns the accepted order to deliver.
func (c RequestDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the requesting vendor.
func (c RequestDeliveryCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// VendorZone returns the zone whose riders may claim the task.
func (c RequestDeliveryCommand) VendorZone() kernel.Zone {
	return c.vendorZone
}

// PickupAddress returns the vendor address to snapshot onto the task.
func (c RequestDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

func (c *RequestDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestDeliveryCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *RequestDeliveryCommand) setVendorZone(vendorZone kernel.Zone) error {
	if err := vendorZone.Validate(); err != nil {
		return err
	}

	c.vendorZone = vendorZone
	return nil
}

func (c *RequestDeliveryCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}
