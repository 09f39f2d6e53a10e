// Package taskrepo provides data transfer objects and mapping functions for
// delivery task persistence. The table carries two guards the domain relies
// on: a unique index on order_id (at most one task per order) and the
// conditional claim update that resolves racing riders to a single winner.
package taskrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	VendorID   uuid.UUID `gorm:"type:uuid;index"`
	VendorZone string    `gorm:"index:idx_tasks_zone_status"`

	RiderID *uuid.UUID `gorm:"type:uuid;index"`
	Status  int        `gorm:"index:idx_tasks_zone_status"`

	PickupAddress   string
	DeliveryAddress string

	PaymentReference string `gorm:"index"`
	PickupSequence   int
	TotalStops       int

	CreatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "delivery_tasks"
}

// fromDomain converts a task aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	ts := aggregate.Timestamps()
	return TaskDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		VendorID:         aggregate.VendorID().Bytes(),
		VendorZone:       aggregate.VendorZone().Name(),
		RiderID:          riderID,
		Status:           int(aggregate.Status()),
		PickupAddress:    aggregate.PickupAddress(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PaymentReference: aggregate.PaymentReference(),
		PickupSequence:   aggregate.PickupSequence(),
		TotalStops:       aggregate.TotalStops(),
		CreatedAt:        ts.CreatedAt,
		AssignedAt:       ts.AssignedAt,
		PickedUpAt:       ts.PickedUpAt,
		DeliveredAt:      ts.DeliveredAt,
	}
}

// toDomain converts a database DTO to a task aggregate using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	vendorZone, err := kernel.NewZone(dto.VendorZone)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	return task.RestoreTask(
		id, orderID, vendorID, vendorZone,
		riderID, task.Status(dto.Status),
		dto.PickupAddress, dto.DeliveryAddress,
		dto.PaymentReference, dto.PickupSequence, dto.TotalStops,
		task.Timestamps{
			CreatedAt:   dto.CreatedAt,
			AssignedAt:  dto.AssignedAt,
			PickedUpAt:  dto.PickedUpAt,
			DeliveredAt: dto.DeliveredAt,
		},
	)
}
