// Package paymentrepo provides data transfer objects and mapping functions
// for staged payment persistence. The reference is the primary key: staging
// the same checkout twice breaches it, and the Staged -> Applied flip is a
// conditional update so a confirmation can only be applied once.
package paymentrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// StagedPaymentDTO represents the database structure for staged payments.
type StagedPaymentDTO struct {
	Reference string          `gorm:"primaryKey"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int
	StagedAt  time.Time
	AppliedAt *time.Time
}

// TableName specifies the database table name for staged payments.
func (StagedPaymentDTO) TableName() string {
	return "staged_payments"
}

// fromDomain converts a staged payment aggregate to its database representation.
func fromDomain(aggregate *payment.StagedPayment) StagedPaymentDTO {
	return StagedPaymentDTO{
		Reference: aggregate.Reference(),
		Amount:    aggregate.Amount().Decimal(),
		Status:    int(aggregate.Status()),
		StagedAt:  aggregate.StagedAt(),
		AppliedAt: aggregate.AppliedAt(),
	}
}

// toDomain converts a database DTO to a staged payment aggregate.
func toDomain(dto StagedPaymentDTO) (*payment.StagedPayment, error) {
	amount, err := kernel.NewMoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestoreStagedPayment(
		dto.Reference, amount, payment.Status(dto.Status), dto.StagedAt, dto.AppliedAt)
}
