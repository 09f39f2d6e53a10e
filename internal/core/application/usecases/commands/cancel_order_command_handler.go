package commands

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a customer's order while it is still
// Pending or Paid. The write is guarded by the status the order was loaded
// in, so a vendor acceptance racing the cancellation makes one of the two
// fail instead of silently losing an update.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.ChangePublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.ChangePublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels the order. Only the order's own customer may cancel it.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("customerId", cmd.CustomerID().String())
	}

	loadedStatus := o.Status()
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, loadedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.Change{
		EntityType: ports.EntityOrder,
		EntityID:   o.ID().String(),
		NewState:   o.Status().String(),
	})

	return nil
}
