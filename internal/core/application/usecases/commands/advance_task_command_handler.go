package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/ports"
)

// AdvanceTaskCommandHandler moves a task one stage toward delivery on
// behalf of its assigned rider. Delivering the final stage also completes
// the task's order, in the same transaction, so an order can never stay
// Accepted after its goods arrived.
type AdvanceTaskCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.ChangePublisher
}

// NewAdvanceTaskCommandHandler creates a handler for rider progress reports.
func NewAdvanceTaskCommandHandler(
	uowFactory FulfillmentUoWFactory, publisher ports.ChangePublisher,
) AdvanceTaskCommandHandler {
	return AdvanceTaskCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle advances the task. Ownership and edge legality are enforced by the
// aggregate; the conditional write guards against a concurrent advance of
// the same task.
func (h *AdvanceTaskCommandHandler) Handle(ctx context.Context, cmd AdvanceTaskCommand) error {
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

	taskRepo := uow.TaskRepository()
	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	loadedStatus := t.Status()
	if err = t.Advance(cmd.RiderID(), cmd.ToStatus()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t, loadedStatus); err != nil {
		return err
	}

	var deliveredOrder *order.Order
	if t.Status() == task.Delivered {
		deliveredOrder, err = h.completeOrder(ctx, uow, t)
		if err != nil {
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
	if deliveredOrder != nil {
		h.publisher.Publish(ports.Change{
			EntityType: ports.EntityOrder,
			EntityID:   deliveredOrder.ID().String(),
			NewState:   deliveredOrder.Status().String(),
		})
	}

	return nil
}

// completeOrder closes the order behind a delivered task.
func (h *AdvanceTaskCommandHandler) completeOrder(
	ctx context.Context, uow FulfillmentUoW, t *task.Task,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, t.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o, order.Accepted); err != nil {
		return nil, err
	}

	return o, nil
}
