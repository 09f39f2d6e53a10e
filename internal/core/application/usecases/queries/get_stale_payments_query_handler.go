package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStalePaymentsQueryHandler lists checkout batches still waiting for a
// gateway confirmation past the query's age threshold.
type GetStalePaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePaymentsQueryHandler creates a handler for stale payment queries.
func NewGetStalePaymentsQueryHandler(db *gorm.DB) GetStalePaymentsQueryHandler {
	return GetStalePaymentsQueryHandler{db: db}
}

// Handle returns the still-Staged payments older than the threshold, oldest
// first.
func (h GetStalePaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalePaymentsQuery,
) ([]GetStalePaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	payments := make([]GetStalePaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			amount,
			staged_at
		FROM staged_payments
		WHERE status = ? AND staged_at < ?
		ORDER BY staged_at, reference
	`, payment.Staged, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var paymentResp GetStalePaymentsQueryResponse
		var amount decimal.Decimal

		err = rows.Scan(
			&paymentResp.Reference,
			&amount,
			&paymentResp.StagedAt,
		)
		if err != nil {
			return nil, err
		}

		paymentResp.Amount = amount.StringFixed(2)
		payments = append(payments, paymentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
