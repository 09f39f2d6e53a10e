package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCandidateTasksQueryHandler lists the claimable tasks of one zone.
// Reads projection rows directly; the claim itself goes through the command
// side, so a listed task may already be gone by the time a rider taps it.
type GetCandidateTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetCandidateTasksQueryHandler creates a handler for candidate task queries.
func NewGetCandidateTasksQueryHandler(db *gorm.DB) GetCandidateTasksQueryHandler {
	return GetCandidateTasksQueryHandler{db: db}
}

// Handle returns the zone's Pending tasks, oldest first.
func (h GetCandidateTasksQueryHandler) Handle(
	ctx context.Context,
	query GetCandidateTasksQuery,
) ([]GetCandidateTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetCandidateTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			pickup_address,
			delivery_address,
			pickup_sequence,
			total_stops
		FROM delivery_tasks
		WHERE status = ? AND vendor_zone = ?
		ORDER BY created_at, id
	`, task.Pending, query.Zone().Name()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var taskResp GetCandidateTasksQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&taskResp.PickupAddress,
			&taskResp.DeliveryAddress,
			&taskResp.PickupSequence,
			&taskResp.TotalStops,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		taskResp.ID = taskID

		taskOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		taskResp.OrderID = taskOrderID

		tasks = append(tasks, taskResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
