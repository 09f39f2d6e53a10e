// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate layer and read projection rows
// straight from the database.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCandidateTasksQueryIsNotConstructed = errors.New(
	"GetCandidateTasksQuery must be created via NewGetCandidateTasksQuery constructor",
)

// GetCandidateTasksQuery retrieves the pool of unclaimed delivery tasks a
// rider may claim: every Pending task whose vendor zone matches the rider's.
type GetCandidateTasksQuery struct {
	zone kernel.Zone

	guard guard.ConstructorGuard
}

// NewGetCandidateTasksQuery creates a query for one zone's pending tasks.
func NewGetCandidateTasksQuery(zone kernel.Zone) (GetCandidateTasksQuery, error) {
	if err := zone.Validate(); err != nil {
		return GetCandidateTasksQuery{}, err
	}

	return GetCandidateTasksQuery{
		zone:  zone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCandidateTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetCandidateTasksQueryIsNotConstructed)
}

// Zone returns the zone whose pending tasks are listed.
func (q GetCandidateTasksQuery) Zone() kernel.Zone {
	return q.zone
}

// GetCandidateTasksQueryResponse is one claimable task as shown to riders:
// the stop addresses plus the task's position within its checkout group.
type GetCandidateTasksQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	PickupSequence  int
	TotalStops      int
}
