package paymentrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM staged payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add saves a newly staged payment. A duplicate reference fails with a
// PreconditionFailedError, rejecting the whole checkout batch.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.StagedPayment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewPreconditionFailedErrorWithCause(
				"payment", "exists", "unique reference", err)
		}
		return err
	}

	return nil
}

// GetByReference retrieves a staged payment by its gateway reference.
func (r *GormPaymentRepository) GetByReference(
	ctx context.Context, reference string,
) (*payment.StagedPayment, error) {
	var dto StagedPaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// LockByReference takes a SELECT ... FOR UPDATE lock on the payment row,
// held until the surrounding transaction ends. Concurrent transactions
// touching the same checkout group queue here.
func (r *GormPaymentRepository) LockByReference(ctx context.Context, reference string) error {
	var dto StagedPaymentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("payment", reference)
		}
		return err
	}

	return nil
}

// MarkApplied flips a payment from Staged to Applied. The conditional
// update makes the flip happen at most once; a racing confirmation affects
// zero rows and gets a PreconditionFailedError.
func (r *GormPaymentRepository) MarkApplied(ctx context.Context, aggregate *payment.StagedPayment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StagedPaymentDTO{}).
		Where("reference = ? AND status = ?", dto.Reference, int(payment.Staged)).
		Updates(map[string]any{
			"status":     dto.Status,
			"applied_at": dto.AppliedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError(
			"payment", payment.Applied.String(), payment.Staged.String())
	}

	return nil
}
