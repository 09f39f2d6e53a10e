package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

func mustZone(t *testing.T, name string) kernel.Zone {
	t.Helper()
	zone, err := kernel.NewZone(name)
	require.NoError(t, err)
	return zone
}

// addAcceptedOrder stages an Accepted order under the given payment
// reference, staging the checkout's payment row on first use.
func addAcceptedOrder(t *testing.T, uow *fakeUoW, vendorID kernel.UUID, reference string) *order.Order {
	t.Helper()

	if _, err := uow.payments.GetByReference(t.Context(), reference); err != nil {
		staged, stageErr := payment.NewStagedPayment(reference, kernel.MustMoney("300.00"))
		require.NoError(t, stageErr)
		require.NoError(t, uow.payments.Add(t.Context(), staged))
	}

	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("300.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), vendorID, kernel.NewUUID(),
		[]order.LineItem{item}, kernel.ZeroMoney(), "42 Customer Rd", reference)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid())
	require.NoError(t, o.Accept())
	require.NoError(t, uow.orders.Add(t.Context(), o))
	return o
}

func TestRequestDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	publisher := &recordingPublisher{}
	vendorID := kernel.NewUUID()
	o := addAcceptedOrder(t, uow, vendorID, "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, publisher)
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), vendorID, mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	created, err := uow.tasks.GetByOrderID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, task.Pending, created.Status())
	assert.Equal(t, "10 Vendor St", created.PickupAddress())
	assert.Equal(t, "42 Customer Rd", created.DeliveryAddress())
	assert.Equal(t, "PAY123", created.PaymentReference())
	assert.Equal(t, 1, created.PickupSequence())
	assert.Equal(t, 1, created.TotalStops())

	changes := publisher.all()
	require.Len(t, changes, 1)
	assert.Equal(t, ports.EntityTask, changes[0].EntityType)
	assert.Equal(t, "Pending", changes[0].NewState)
}

func TestRequestDeliveryCommandHandler_Handle_SequencesSiblings(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	vendor1, vendor2 := kernel.NewUUID(), kernel.NewUUID()
	order1 := addAcceptedOrder(t, uow, vendor1, "PAY123")
	order2 := addAcceptedOrder(t, uow, vendor2, "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})

	cmd1, err := commands.NewRequestDeliveryCommand(order1.ID(), vendor1, mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd1))

	cmd2, err := commands.NewRequestDeliveryCommand(order2.ID(), vendor2, mustZone(t, "SOUTH"), "99 Market Sq")
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd2))

	task1, err := uow.tasks.GetByOrderID(ctx, order1.ID())
	require.NoError(t, err)
	task2, err := uow.tasks.GetByOrderID(ctx, order2.ID())
	require.NoError(t, err)

	// contiguous group of two, both aware of the new total
	sequences := map[int]bool{task1.PickupSequence(): true, task2.PickupSequence(): true}
	assert.Equal(t, map[int]bool{1: true, 2: true}, sequences)
	assert.Equal(t, 2, task1.TotalStops())
	assert.Equal(t, 2, task2.TotalStops())
}

func TestRequestDeliveryCommandHandler_Handle_LocksCheckoutGroup(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	vendorID := kernel.NewUUID()
	o := addAcceptedOrder(t, uow, vendorID, "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), vendorID, mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 1, uow.payments.lockCount("PAY123"),
		"group lock taken before sequencing")
}

func TestRequestDeliveryCommandHandler_Handle_MissingStagedPayment(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	vendorID := kernel.NewUUID()
	o := addAcceptedOrder(t, uow, vendorID, "PAY123")
	// simulate a checkout whose payment row is gone
	delete(uow.payments.payments, "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), vendorID, mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = uow.tasks.GetByOrderID(ctx, o.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "no task spawned")
}

func TestRequestDeliveryCommandHandler_Handle_DuplicateRequest(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	vendorID := kernel.NewUUID()
	o := addAcceptedOrder(t, uow, vendorID, "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), vendorID, mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed, "one task per order")
}

func TestRequestDeliveryCommandHandler_Handle_OrderNotAccepted(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	customerID := kernel.NewUUID()
	o := addOrder(t, uow, customerID, order.Paid)

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), o.VendorID(), mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	_, err = uow.tasks.GetByOrderID(ctx, o.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "no task spawned")
}

func TestRequestDeliveryCommandHandler_Handle_WrongVendor(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	o := addAcceptedOrder(t, uow, kernel.NewUUID(), "PAY123")

	handler := commands.NewRequestDeliveryCommandHandler(fakeDispatchUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewRequestDeliveryCommand(o.ID(), kernel.NewUUID(), mustZone(t, "NORTH"), "10 Vendor St")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
