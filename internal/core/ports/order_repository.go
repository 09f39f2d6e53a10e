// Package ports defines repository and notification interfaces for the
// marketplace core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// status the caller loaded. The write applies only if the stored row is
	// still in expectedStatus; a concurrent transition surfaces as a
	// PreconditionFailedError and the aggregate is not persisted.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPaymentReference retrieves every order staged under one checkout
	// reference. Used by payment reconciliation to recover batch membership.
	GetByPaymentReference(ctx context.Context, reference string) ([]*order.Order, error)

	// GetUncompletedByVendor retrieves a vendor's orders that still need
	// attention: everything except Completed, Rejected and Cancelled.
	GetUncompletedByVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error)
}
