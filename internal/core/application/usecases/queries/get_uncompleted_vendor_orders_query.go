package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetUncompletedVendorOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedVendorOrdersQuery must be created via NewGetUncompletedVendorOrdersQuery constructor",
)

// GetUncompletedVendorOrdersQuery retrieves a vendor's open workload: every
// order of theirs that has not reached a terminal state.
type GetUncompletedVendorOrdersQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUncompletedVendorOrdersQuery creates a query for one vendor's open orders.
func NewGetUncompletedVendorOrdersQuery(vendorID kernel.UUID) (GetUncompletedVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetUncompletedVendorOrdersQuery{}, err
	}

	return GetUncompletedVendorOrdersQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose open orders are listed.
func (q GetUncompletedVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// GetUncompletedVendorOrdersQueryResponse is one open order in a vendor's
// dashboard view.
type GetUncompletedVendorOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	TotalPrice       kernel.Money
	Status           order.Status
	DeliveryAddress  string
	PaymentReference string
}
