package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUncompletedVendorOrdersQueryHandler lists a vendor's non-terminal
// orders for their dashboard: new submissions awaiting payment, paid orders
// awaiting a decision, and accepted orders in fulfillment.
type GetUncompletedVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedVendorOrdersQueryHandler creates a handler for vendor
// workload queries.
func NewGetUncompletedVendorOrdersQueryHandler(db *gorm.DB) GetUncompletedVendorOrdersQueryHandler {
	return GetUncompletedVendorOrdersQueryHandler{db: db}
}

// Handle returns the vendor's open orders, oldest first.
func (h GetUncompletedVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedVendorOrdersQuery,
) ([]GetUncompletedVendorOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedVendorOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_price,
			status,
			delivery_address,
			payment_reference
		FROM orders
		WHERE vendor_id = ? AND status NOT IN (?, ?, ?)
		ORDER BY created_at, id
	`, query.VendorID().String(),
		order.Completed, order.Rejected, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedVendorOrdersQueryResponse
		var id, customerID uuid.UUID
		var totalPrice decimal.Decimal
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&totalPrice,
			&status,
			&orderResp.DeliveryAddress,
			&orderResp.PaymentReference,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = orderCustomerID

		price, priceErr := kernel.NewMoneyFromDecimal(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		orderResp.TotalPrice = price
		orderResp.Status = order.Status(status)

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
