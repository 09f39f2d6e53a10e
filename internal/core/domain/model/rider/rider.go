// Package rider provides the rider aggregate used by the delivery matching
// pool. A rider becomes a candidate for a pending task only when approved
// and registered in the task's vendor zone; unzoned riders are shown nothing.
package rider

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider was not created via a factory method.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Approval represents the rider's vetting state. Only approved riders are
// shown candidate tasks or allowed to claim.
type Approval int

const (
	// ApprovalUnknown catches uninitialized values.
	ApprovalUnknown Approval = iota

	// ApprovalPending is the initial state after registration.
	ApprovalPending

	// ApprovalApproved allows the rider into candidate pools.
	ApprovalApproved
)

// String returns the human-readable name of the approval state.
func (a Approval) String() string {
	switch a {
	case ApprovalPending:
		return "Pending"
	case ApprovalApproved:
		return "Approved"
	default:
		return "Unknown"
	}
}

// Validate checks if the Approval value is defined.
func (a Approval) Validate() error {
	if a != ApprovalPending && a != ApprovalApproved {
		return errs.NewValueIsInvalidError("approval")
	}
	return nil
}

// Rider is the aggregate root for a delivery rider.
type Rider struct {
	id       kernel.UUID
	name     string
	zone     *kernel.Zone
	approval Approval

	guard guard.ConstructorGuard
}

// NewRider registers a rider. Riders start unzoned and pending approval,
// so they are not candidates for any task until both are set.
func NewRider(id kernel.UUID, name string) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Rider{
		id:       id,
		name:     name,
		approval: ApprovalPending,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(id kernel.UUID, name string, zone *kernel.Zone, approval Approval) (*Rider, error) {
	if err := errors.Join(id.Validate(), approval.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if zone != nil {
		if err := zone.Validate(); err != nil {
			return nil, err
		}
	}

	return &Rider{
		id:       id,
		name:     name,
		zone:     zone,
		approval: approval,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rider was created through a factory method.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Zone returns the rider's registered zone, nil while unzoned.
func (r *Rider) Zone() *kernel.Zone {
	return r.zone
}

// Approval returns the rider's vetting state.
func (r *Rider) Approval() Approval {
	return r.approval
}

// Approve admits the rider into candidate pools.
func (r *Rider) Approve() {
	r.approval = ApprovalApproved
}

// AssignZone registers the rider in a delivery zone.
func (r *Rider) AssignZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	r.zone = &zone
	return nil
}

// IsCandidateFor reports whether the rider may see and claim pending tasks
// in the given zone: approved, zoned, and zone-equal. This is a hard filter,
// not a ranking.
func (r *Rider) IsCandidateFor(zone kernel.Zone) bool {
	return r.approval == ApprovalApproved && r.zone != nil && r.zone.IsEqual(zone)
}
