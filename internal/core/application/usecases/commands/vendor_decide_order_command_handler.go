package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// VendorDecideOrderCommandHandler records a vendor's accept/reject decision
// on a paid order. The decision only sticks if the order is still Paid at
// write time; a concurrent cancellation wins the race and the decision
// fails with a PreconditionFailedError.
type VendorDecideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.ChangePublisher
}

// NewVendorDecideOrderCommandHandler creates a handler for vendor decisions.
func NewVendorDecideOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.ChangePublisher,
) VendorDecideOrderCommandHandler {
	return VendorDecideOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle applies the decision. Only the order's own vendor may decide;
// anyone else gets an UnauthorizedError.
func (h *VendorDecideOrderCommandHandler) Handle(ctx context.Context, cmd VendorDecideOrderCommand) error {
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

	if !o.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewUnauthorizedError("vendorId", cmd.VendorID().String())
	}

	if cmd.Accept() {
		err = o.Accept()
	} else {
		err = o.Reject()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o, order.Paid); err != nil {
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
