package task

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery task.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//
// The Pending -> Assigned edge is the claim: it happens together with the
// one-time rider assignment and is race-safe at the store level. The later
// edges advance strictly one stage at a time, with no skipping and no
// reverse transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the task is visible to candidate riders
	// and has no rider yet.
	Pending

	// Assigned indicates exactly one rider claimed the task.
	Assigned

	// PickedUp indicates the rider collected the order from the vendor.
	PickedUp

	// Delivered indicates the rider handed the order to the customer. Final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is one of the defined task states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned. Only a Pending task can be
// assigned; assignment happens exactly once, together with setting the rider.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("deliveryTask", s.String(), Assigned.String())
	}
	return Assigned, nil
}

// AdvanceTo transitions the status one stage toward delivery.
//
// Valid transitions:
//   - Assigned -> PickedUp
//   - PickedUp -> Delivered
//
// Any other requested edge, including skipping a stage or moving backwards,
// yields an InvalidTransitionError.
func (s Status) AdvanceTo(to Status) (Status, error) {
	next := map[Status]Status{
		Assigned: PickedUp,
		PickedUp: Delivered,
	}

	if want, ok := next[s]; ok && want == to {
		return to, nil
	}
	return 0, errs.NewInvalidTransitionError("deliveryTask", s.String(), to.String())
}

// ValidateCanHaveRider validates consistency between status and rider
// assignment: a Pending task must have no rider, any later status must.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	if !rider && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	return nil
}
