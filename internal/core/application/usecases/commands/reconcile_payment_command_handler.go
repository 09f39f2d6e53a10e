package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ReconcilePaymentCommandHandler applies a gateway confirmation to a staged
// checkout. The staged payment's Staged -> Applied flip and the batch's
// Pending -> Paid transitions commit in one transaction, which is what makes
// the operation idempotent: a replayed confirmation finds the payment
// Applied and succeeds without touching the orders again.
type ReconcilePaymentCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.ChangePublisher
}

// NewReconcilePaymentCommandHandler creates a handler for payment reconciliation.
func NewReconcilePaymentCommandHandler(
	uowFactory CheckoutUoWFactory, publisher ports.ChangePublisher,
) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reconciles the confirmation.
//
// Outcomes:
//   - unknown reference: ObjectNotFoundError
//   - amount differs from the staged total: PaymentMismatchError, the batch
//     stays Pending for manual review
//   - first confirmation: payment Applied, every order of the batch Paid
//   - replayed confirmation: success with no state change
func (h *ReconcilePaymentCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stagedPayment, err := uow.PaymentRepository().GetByReference(ctx, cmd.Reference())
	if err != nil {
		return err
	}

	if stagedPayment.IsApplied() {
		// replayed confirmation, nothing left to do
		return nil
	}

	if !stagedPayment.MatchesAmount(cmd.ReportedAmount()) {
		return errs.NewPaymentMismatchError(
			cmd.Reference(), cmd.ReportedAmount().String(), stagedPayment.Amount().String())
	}

	if err = stagedPayment.Apply(); err != nil {
		return err
	}
	if err = uow.PaymentRepository().MarkApplied(ctx, stagedPayment); err != nil {
		// a racing confirmation applied it first; that run marked the orders
		if errors.Is(err, errs.ErrPreconditionFailed) {
			return nil
		}
		return err
	}

	orderRepo := uow.OrderRepository()
	batch, err := orderRepo.GetByPaymentReference(ctx, cmd.Reference())
	if err != nil {
		return err
	}

	paid := make([]*order.Order, 0, len(batch))
	for _, o := range batch {
		if err = o.MarkPaid(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o, order.Pending); err != nil {
			return err
		}
		paid = append(paid, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range paid {
		h.publisher.Publish(ports.Change{
			EntityType: ports.EntityOrder,
			EntityID:   o.ID().String(),
			NewState:   o.Status().String(),
		})
	}

	return nil
}
