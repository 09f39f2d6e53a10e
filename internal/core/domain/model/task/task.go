package task

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created
	// through the NewTask or RestoreTask factory methods.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

	// ErrPickupAddressIsRequired is returned when a task is created without a
	// pickup address snapshot.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")

	// ErrDeliveryAddressIsRequired is returned when a task is created without a
	// delivery address snapshot.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Timestamps carries the per-transition timestamps of a delivery task.
type Timestamps struct {
	CreatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// Task is the aggregate root for one unit of delivery work: "pick up order X
// at the vendor, deliver it to the customer." Exactly one task exists per
// order, created when the vendor requests delivery for an accepted order.
//
// Invariants:
//   - the rider reference transitions nil -> value exactly once, at claim time
//   - status follows Pending -> Assigned -> PickedUp -> Delivered
//   - only the assigned rider may advance the status
//   - address snapshots are fixed at creation and never change
//   - pickup sequence, when set, is a 1-based position within the task's
//     checkout group; it is advisory for routing, not an execution constraint
type Task struct {
	id      kernel.UUID
	orderID kernel.UUID

	vendorID   kernel.UUID
	vendorZone kernel.Zone

	riderID *kernel.UUID
	status  Status

	pickupAddress   string
	deliveryAddress string

	// paymentReference links sibling tasks spawned from one multi-vendor
	// checkout; pickupSequence/totalStops are stamped by the stop sequencer.
	paymentReference string
	pickupSequence   int
	totalStops       int

	timestamps Timestamps

	guard guard.ConstructorGuard
}

// NewTask creates a Pending, unassigned delivery task for an order,
// snapshotting the pickup and delivery addresses at call time.
func NewTask(
	id kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	vendorZone kernel.Zone,
	pickupAddress string,
	deliveryAddress string,
	paymentReference string,
) (*Task, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		vendorZone.Validate(),
	); err != nil {
		return nil, err
	}
	if pickupAddress == "" {
		return nil, ErrPickupAddressIsRequired
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}

	return &Task{
		id:               id,
		orderID:          orderID,
		vendorID:         vendorID,
		vendorZone:       vendorZone,
		status:           Pending,
		pickupAddress:    pickupAddress,
		deliveryAddress:  deliveryAddress,
		paymentReference: paymentReference,
		timestamps:       Timestamps{CreatedAt: time.Now().UTC()},
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreTask reconstructs a task from persistence, validating structural
// invariants including rider/status consistency.
func RestoreTask(
	id kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	vendorZone kernel.Zone,
	riderID *kernel.UUID,
	status Status,
	pickupAddress string,
	deliveryAddress string,
	paymentReference string,
	pickupSequence int,
	totalStops int,
	timestamps Timestamps,
) (*Task, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		vendorZone.Validate(),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}

	return &Task{
		id:               id,
		orderID:          orderID,
		vendorID:         vendorID,
		vendorZone:       vendorZone,
		riderID:          riderID,
		status:           status,
		pickupAddress:    pickupAddress,
		deliveryAddress:  deliveryAddress,
		paymentReference: paymentReference,
		pickupSequence:   pickupSequence,
		totalStops:       totalStops,
		timestamps:       timestamps,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Task was created through a factory method.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by identity.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the order this task delivers.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// VendorID returns the vendor whose order is picked up.
func (t *Task) VendorID() kernel.UUID {
	return t.vendorID
}

// VendorZone returns the zone used to pool candidate riders.
func (t *Task) VendorZone() kernel.Zone {
	return t.vendorZone
}

// Rider returns the assigned rider's ID, nil while the task is unclaimed.
func (t *Task) Rider() *kernel.UUID {
	return t.riderID
}

// Status returns the current lifecycle state.
func (t *Task) Status() Status {
	return t.status
}

// PickupAddress returns the vendor address snapshot.
func (t *Task) PickupAddress() string {
	return t.pickupAddress
}

// DeliveryAddress returns the customer address snapshot.
func (t *Task) DeliveryAddress() string {
	return t.deliveryAddress
}

// PaymentReference returns the checkout reference shared with sibling tasks,
// empty for tasks outside a multi-vendor group.
func (t *Task) PaymentReference() string {
	return t.paymentReference
}

// PickupSequence returns the 1-based position within the checkout group,
// zero while unsequenced.
func (t *Task) PickupSequence() int {
	return t.pickupSequence
}

// TotalStops returns the size of the checkout group, zero while unsequenced.
func (t *Task) TotalStops() int {
	return t.totalStops
}

// Timestamps returns the per-transition timestamps.
func (t *Task) Timestamps() Timestamps {
	return t.timestamps
}

// Claim assigns the task to a rider. The rider reference is set exactly
// once: a second claim, or a claim on a task past Pending, fails with
// TaskAlreadyClaimedError so callers can silently re-poll the pool.
//
// This is the in-memory half of the claim; the persistence adapter pairs it
// with a conditional write so racing claimants yield exactly one winner.
func (t *Task) Claim(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if t.riderID != nil || t.status != Pending {
		return errs.NewTaskAlreadyClaimedError(t.id.String())
	}

	newStatus, err := t.status.Assign()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.riderID = &riderID
	t.timestamps.AssignedAt = &now
	return nil
}

// Advance moves the task one stage toward delivery on behalf of a rider.
// Only the rider holding the task may advance it; anyone else gets an
// UnauthorizedError and the task is left untouched.
func (t *Task) Advance(callerID kernel.UUID, to Status) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if t.riderID == nil || !t.riderID.IsEqual(callerID) {
		return errs.NewUnauthorizedError("riderId", callerID.String())
	}

	newStatus, err := t.status.AdvanceTo(to)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	switch newStatus {
	case PickedUp:
		t.timestamps.PickedUpAt = &now
	case Delivered:
		t.timestamps.DeliveredAt = &now
	}
	return nil
}

// AssignSequence stamps the task's position within its checkout group.
// The sequence is 1-based and must not exceed the group size.
func (t *Task) AssignSequence(sequence, totalStops int) error {
	if totalStops < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalStops", fmt.Errorf("%d is not greater than 0", totalStops),
		)
	}
	if sequence < 1 || sequence > totalStops {
		return errs.NewValueIsOutOfRangeError("pickupSequence", sequence, 1, totalStops)
	}

	t.pickupSequence = sequence
	t.totalStops = totalStops
	return nil
}
