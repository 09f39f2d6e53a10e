package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
)

// SubmitOrderBatchCommandHandler stages a customer checkout: one Pending
// order per vendor plus a StagedPayment for the batch total, all in one
// transaction. The staged payment is what later makes reconciliation
// idempotent, so it is written before any gateway call happens.
type SubmitOrderBatchCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewSubmitOrderBatchCommandHandler creates a handler for checkout staging.
func NewSubmitOrderBatchCommandHandler(uowFactory CheckoutUoWFactory) SubmitOrderBatchCommandHandler {
	return SubmitOrderBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stages the checkout batch and returns the created order IDs in the
// same per-vendor sequence as the command. A duplicate payment reference
// fails the whole batch with a PreconditionFailedError, leaving nothing
// staged.
func (h *SubmitOrderBatchCommandHandler) Handle(
	ctx context.Context, cmd SubmitOrderBatchCommand,
) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.buildOrders(cmd)
	if err != nil {
		return nil, err
	}

	batchTotal := kernel.ZeroMoney()
	for _, o := range orders {
		batchTotal = batchTotal.Add(o.TotalPrice())
	}

	stagedPayment, err := payment.NewStagedPayment(cmd.PaymentReference(), batchTotal)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PaymentRepository().Add(ctx, stagedPayment); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}

// buildOrders turns the command's per-vendor slices into Pending order
// aggregates sharing the batch's payment reference.
func (h *SubmitOrderBatchCommandHandler) buildOrders(cmd SubmitOrderBatchCommand) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(cmd.Orders()))

	for _, batchOrder := range cmd.Orders() {
		items := make([]order.LineItem, 0, len(batchOrder.Items()))
		for _, batchItem := range batchOrder.Items() {
			lineItem, err := order.NewLineItem(
				batchItem.ProductID(), batchItem.Quantity(), batchItem.UnitPrice())
			if err != nil {
				return nil, err
			}
			items = append(items, lineItem)
		}

		o, err := order.NewOrder(
			kernel.NewUUID(),
			batchOrder.VendorID(),
			cmd.CustomerID(),
			items,
			batchOrder.DeliveryCharge(),
			cmd.DeliveryAddress(),
			cmd.PaymentReference(),
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, nil
}
