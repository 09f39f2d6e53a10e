// Package payment provides the staged payment aggregate backing idempotent
// reconciliation. A StagedPayment is written at checkout submission, before
// the gateway round-trip, and is the durable record that decides whether an
// externally reported confirmation has already been applied.
package payment

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrStagedPaymentIsNotConstructed is returned when a StagedPayment was not
	// created via a factory method.
	ErrStagedPaymentIsNotConstructed = errors.New(
		"StagedPayment must be created via NewStagedPayment constructor",
	)

	// ErrReferenceIsRequired is returned when staging a payment without a reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")
)

// Status represents the reconciliation state of a staged payment.
//
// The Staged -> Applied edge happens exactly once, inside the same
// transaction that marks the batch's orders Paid. Replayed gateway
// callbacks find the payment Applied and are answered without re-marking.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// Staged means the checkout was submitted and awaits the gateway callback.
	Staged

	// Applied means a successful confirmation was reconciled against the batch.
	Applied
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Staged:
		return "Staged"
	case Applied:
		return "Applied"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status value is defined.
func (s Status) Validate() error {
	if s != Staged && s != Applied {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// StagedPayment records one checkout's expected payment: the stable gateway
// reference, the sum of the batch's order totals, and whether the external
// confirmation has been applied yet.
type StagedPayment struct {
	reference string
	amount    kernel.Money
	status    Status
	stagedAt  time.Time
	appliedAt *time.Time

	guard guard.ConstructorGuard
}

// NewStagedPayment stages a payment for a submitted checkout batch.
// The amount must equal the sum of the batch's order totals.
func NewStagedPayment(reference string, amount kernel.Money) (*StagedPayment, error) {
	if reference == "" {
		return nil, ErrReferenceIsRequired
	}
	if err := amount.Validate(); err != nil {
		return nil, err
	}

	return &StagedPayment{
		reference: reference,
		amount:    amount,
		status:    Staged,
		stagedAt:  time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreStagedPayment reconstructs a staged payment from persistence.
func RestoreStagedPayment(
	reference string,
	amount kernel.Money,
	status Status,
	stagedAt time.Time,
	appliedAt *time.Time,
) (*StagedPayment, error) {
	if reference == "" {
		return nil, ErrReferenceIsRequired
	}
	if err := errors.Join(amount.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &StagedPayment{
		reference: reference,
		amount:    amount,
		status:    status,
		stagedAt:  stagedAt,
		appliedAt: appliedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the StagedPayment was created through a factory method.
func (p *StagedPayment) Validate() error {
	if p == nil {
		return ErrStagedPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrStagedPaymentIsNotConstructed)
}

// Reference returns the stable gateway correlation reference.
func (p *StagedPayment) Reference() string {
	return p.reference
}

// Amount returns the staged batch total.
func (p *StagedPayment) Amount() kernel.Money {
	return p.amount
}

// Status returns the reconciliation state.
func (p *StagedPayment) Status() Status {
	return p.status
}

// StagedAt returns when the checkout was submitted.
func (p *StagedPayment) StagedAt() time.Time {
	return p.stagedAt
}

// AppliedAt returns when the confirmation was applied, nil while staged.
func (p *StagedPayment) AppliedAt() *time.Time {
	return p.appliedAt
}

// IsApplied reports whether the confirmation was already reconciled.
func (p *StagedPayment) IsApplied() bool {
	return p.status == Applied
}

// MatchesAmount reports whether an externally reported amount equals the
// staged total. A mismatch keeps the batch Pending for manual review.
func (p *StagedPayment) MatchesAmount(reported kernel.Money) bool {
	return p.amount.IsEqual(reported)
}

// Apply marks the payment as reconciled. Applying twice fails with a
// PreconditionFailedError; callers treat that as a replay, not a fault.
func (p *StagedPayment) Apply() error {
	if p.status != Staged {
		return errs.NewPreconditionFailedError("payment", p.status.String(), Staged.String())
	}

	now := time.Now().UTC()
	p.status = Applied
	p.appliedAt = &now
	return nil
}
