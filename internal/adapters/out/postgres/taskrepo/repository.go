package taskrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task to the database. The unique index on order_id turns
// a duplicate delivery request into a PreconditionFailedError instead of a
// second task.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewPreconditionFailedErrorWithCause(
				"task", "exists", "no task for order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing task's lifecycle columns, guarded by the status
// the caller loaded.
func (r *GormTaskRepository) Update(
	ctx context.Context, aggregate *task.Task, expectedStatus task.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Select("status", "picked_up_at", "delivered_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError(
			"task", "changed concurrently", expectedStatus.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateSequence persists only the task's position within its checkout
// group, leaving the lifecycle columns alone so re-sequencing never races
// with claims or advances.
func (r *GormTaskRepository) UpdateSequence(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"pickup_sequence": aggregate.PickupSequence(),
			"total_stops":     aggregate.TotalStops(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the task spawned for an order, if any.
func (r *GormTaskRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*task.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPaymentReference retrieves every task of one checkout group, oldest first.
func (r *GormTaskRepository) GetByPaymentReference(
	ctx context.Context, reference string,
) ([]*task.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "payment_reference = ?", reference).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// Claim atomically assigns a Pending, unclaimed task to the aggregate's
// rider. The conditional update is the single arbiter of claim races: it
// affects one row for exactly one claimant, and everyone else gets a
// TaskAlreadyClaimedError.
func (r *GormTaskRepository) Claim(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ? AND status = ? AND rider_id IS NULL", dto.ID, int(task.Pending)).
		Updates(map[string]any{
			"status":      dto.Status,
			"rider_id":    dto.RiderID,
			"assigned_at": dto.AssignedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewTaskAlreadyClaimedError(aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
