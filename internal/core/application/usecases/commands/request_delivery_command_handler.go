package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// RequestDeliveryCommandHandler spawns the delivery task for an accepted
// order and renumbers the order's checkout group so sibling stops stay
// contiguous. Task creation and group re-sequencing commit together, and
// the staged payment row is locked first so concurrent requests for
// siblings of the same checkout never renumber a partial group.
type RequestDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	sequencer  services.StopSequencer
	publisher  ports.ChangePublisher
}

// NewRequestDeliveryCommandHandler creates a handler for delivery requests.
func NewRequestDeliveryCommandHandler(
	uowFactory DispatchUoWFactory, publisher ports.ChangePublisher,
) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewStopSequencer(),
		publisher:  publisher,
	}
}

// Handle creates the task.
//
// Preconditions:
//   - the order exists and belongs to the requesting vendor
//   - the order is Accepted; anything else fails with a PreconditionFailedError
//   - no task exists for the order yet; the repository's uniqueness guard
//     turns a duplicate request into a PreconditionFailedError
func (h *RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewUnauthorizedError("vendorId", cmd.VendorID().String())
	}
	if o.Status() != order.Accepted {
		return errs.NewPreconditionFailedError(
			"order", o.Status().String(), order.Accepted.String())
	}

	// The payment row is the checkout group's lock. Held until commit, it
	// keeps a concurrent sibling request from reading the group before this
	// transaction's task is visible.
	if err = uow.PaymentRepository().LockByReference(ctx, o.PaymentReference()); err != nil {
		return err
	}

	t, err := task.NewTask(
		kernel.NewUUID(),
		o.ID(),
		o.VendorID(),
		cmd.VendorZone(),
		cmd.PickupAddress(),
		o.DeliveryAddress(),
		o.PaymentReference(),
	)
	if err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	if err = taskRepo.Add(ctx, t); err != nil {
		return err
	}

	group, err := taskRepo.GetByPaymentReference(ctx, o.PaymentReference())
	if err != nil {
		return err
	}

	if err = h.sequencer.Sequence(group); err != nil {
		return err
	}
	for _, sibling := range group {
		if err = taskRepo.UpdateSequence(ctx, sibling); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.Change{
		EntityType: ports.EntityTask,
		EntityID:   t.ID().String(),
		NewState:   t.Status().String(),
	})

	return nil
}
