package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the marketplace workflow
// and nothing else.
//
// State transitions:
//
//	Pending ──> Paid ──┬──> Accepted ──> Completed
//	   │         │     └──> Rejected
//	   │         │
//	   └─────────┴──────────> Cancelled
//	   (any non-terminal state may be cancelled)
//
// Completed, Rejected, and Cancelled are terminal: no edge leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted order awaiting payment
	// confirmation from the gateway.
	Pending

	// Paid indicates the external payment was reconciled against the order's
	// staged batch. Commission is computed exactly once on this transition.
	Paid

	// Accepted indicates the vendor agreed to fulfill the paid order.
	Accepted

	// Rejected indicates the vendor declined the paid order. Terminal.
	Rejected

	// Completed indicates the vendor marked fulfillment done. Terminal.
	Completed

	// Cancelled indicates an authorized cancellation of a non-terminal order.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is final. Terminal orders accept no
// further transitions; they are retained for audit, never deleted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected || s == Cancelled
}

// MarkPaid transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid (payment reconciled)
//
// Any other starting state yields an InvalidTransitionError and no change.
func (s Status) MarkPaid() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Paid.String())
	}
	return Paid, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Paid -> Accepted (vendor decision)
func (s Status) Accept() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Paid -> Rejected (vendor decision)
func (s Status) Reject() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Rejected.String())
	}
	return Rejected, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed (vendor marked fulfillment done)
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Completed.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal, valid state -> Cancelled
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Cancelled.String())
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
