package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetStalePaymentsQueryIsNotConstructed = errors.New(
	"GetStalePaymentsQuery must be created via NewGetStalePaymentsQuery constructor",
)

// GetStalePaymentsQuery retrieves staged payments whose gateway confirmation
// never arrived: references still Staged after the given age. The sweep job
// runs it periodically and logs the hits for manual review.
type GetStalePaymentsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePaymentsQuery creates a query for payments staged longer than
// olderThan ago.
func NewGetStalePaymentsQuery(olderThan time.Duration) (GetStalePaymentsQuery, error) {
	if olderThan <= 0 {
		return GetStalePaymentsQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStalePaymentsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePaymentsQueryIsNotConstructed)
}

// OlderThan returns the minimum age for a payment to count as stale.
func (q GetStalePaymentsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStalePaymentsQueryResponse is one unconfirmed checkout batch.
type GetStalePaymentsQueryResponse struct {
	Reference string
	Amount    string
	StagedAt  time.Time
}
