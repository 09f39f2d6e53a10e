package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery task
// aggregates. The claim and update operations are conditional writes: the
// adapter must apply them only when the stored row still matches the state
// the caller observed, so concurrent riders resolve to exactly one winner.
type TaskRepository interface {
	// Add persists a new task aggregate. At most one task may exist per
	// order; a duplicate fails with a PreconditionFailedError.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task aggregate, guarded by the
	// status the caller loaded. A concurrent transition surfaces as a
	// PreconditionFailedError.
	Update(ctx context.Context, aggregate *task.Task, expectedStatus task.Status) error

	// UpdateSequence persists only the pickup sequence and total stops of a
	// task, leaving its lifecycle columns untouched. Used by group
	// re-sequencing, which must not race with claims and advances.
	UpdateSequence(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByOrderID retrieves the task spawned for an order, if any.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*task.Task, error)

	// GetByPaymentReference retrieves every task in one checkout group.
	GetByPaymentReference(ctx context.Context, reference string) ([]*task.Task, error)

	// Claim atomically assigns a Pending, unclaimed task to a rider. The
	// write applies only if the stored row is still Pending with no rider;
	// losers of the race get a TaskAlreadyClaimedError.
	Claim(ctx context.Context, aggregate *task.Task) error
}
