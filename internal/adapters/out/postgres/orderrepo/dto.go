// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns are numeric(12,2): cents-exact, no float rounding.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID   uuid.UUID `gorm:"type:uuid;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	DeliveryCharge  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress string

	PaymentReference string `gorm:"index"`
	Status           int    `gorm:"index"`

	CreatedAt   time.Time
	PaidAt      *time.Time
	DecidedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product line of a persisted order.
// Lines are immutable after submission and written once with the order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, li := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: li.ProductID().Bytes(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice().Decimal(),
		})
	}

	ts := aggregate.Timestamps()
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		VendorID:         aggregate.VendorID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Items:            items,
		DeliveryCharge:   aggregate.DeliveryCharge().Decimal(),
		TotalPrice:       aggregate.TotalPrice().Decimal(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PaymentReference: aggregate.PaymentReference(),
		Status:           int(aggregate.Status()),
		CreatedAt:        ts.CreatedAt,
		PaidAt:           ts.PaidAt,
		DecidedAt:        ts.DecidedAt,
		CompletedAt:      ts.CompletedAt,
		CancelledAt:      ts.CancelledAt,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoneyFromDecimal(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItem, itemErr := order.NewLineItem(productID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, lineItem)
	}

	deliveryCharge, err := kernel.NewMoneyFromDecimal(dto.DeliveryCharge)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoneyFromDecimal(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, vendorID, customerID,
		items, deliveryCharge, totalPrice,
		dto.DeliveryAddress, dto.PaymentReference,
		order.Status(dto.Status),
		order.Timestamps{
			CreatedAt:   dto.CreatedAt,
			PaidAt:      dto.PaidAt,
			DecidedAt:   dto.DecidedAt,
			CompletedAt: dto.CompletedAt,
			CancelledAt: dto.CancelledAt,
		},
	)
}
