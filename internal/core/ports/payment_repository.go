package ports

import (
	"context"

	"marketplace/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for staged payments.
// References are unique: staging the same reference twice fails with a
// PreconditionFailedError.
type PaymentRepository interface {
	// Add persists a newly staged payment.
	Add(ctx context.Context, aggregate *payment.StagedPayment) error

	// GetByReference retrieves a staged payment by its gateway reference.
	GetByReference(ctx context.Context, reference string) (*payment.StagedPayment, error)

	// LockByReference takes a row lock on the staged payment for the rest of
	// the surrounding transaction. The row acts as the mutex for its checkout
	// group: anything that changes group membership must acquire it first.
	LockByReference(ctx context.Context, reference string) error

	// MarkApplied flips a payment from Staged to Applied. The write applies
	// only if the stored row is still Staged, so a replayed confirmation in
	// a racing transaction surfaces as a PreconditionFailedError instead of
	// double-applying.
	MarkApplied(ctx context.Context, aggregate *payment.StagedPayment) error
}
