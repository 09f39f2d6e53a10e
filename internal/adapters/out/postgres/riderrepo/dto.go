// Package riderrepo provides data transfer objects and mapping functions
// for rider persistence.
package riderrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Zone     *string `gorm:"index"`
	Approval int
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	var zone *string
	if z := aggregate.Zone(); z != nil {
		name := z.Name()
		zone = &name
	}

	return RiderDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Zone:     zone,
		Approval: int(aggregate.Approval()),
	}
}

// toDomain converts a database DTO to a rider aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zone *kernel.Zone
	if dto.Zone != nil {
		z, zoneErr := kernel.NewZone(*dto.Zone)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zone = &z
	}

	return rider.RestoreRider(id, dto.Name, zone, rider.Approval(dto.Approval))
}
