package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// addOrder stages a single-item order in the given lifecycle state.
func addOrder(t *testing.T, uow *fakeUoW, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("300.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		[]order.LineItem{item}, kernel.ZeroMoney(), "42 Customer Rd", "PAY-"+kernel.NewUUID().String())
	require.NoError(t, err)

	switch status {
	case order.Paid:
		require.NoError(t, o.MarkPaid())
	case order.Accepted:
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Accept())
	case order.Completed:
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Accept())
		require.NoError(t, o.Complete())
	case order.Pending:
	default:
		t.Fatalf("unsupported test status %s", status)
	}

	require.NoError(t, uow.orders.Add(t.Context(), o))
	return o
}

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	publisher := &recordingPublisher{}
	customerID := kernel.NewUUID()
	o := addOrder(t, uow, customerID, order.Pending)

	handler := commands.NewCancelOrderCommandHandler(fakeUoWFactory{uow}, publisher)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, uow.orders.committedStatus(o.ID()))
	require.Len(t, publisher.all(), 1)
	assert.Equal(t, "Cancelled", publisher.all()[0].NewState)
}

func TestCancelOrderCommandHandler_Handle_PaidOrder(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	customerID := kernel.NewUUID()
	o := addOrder(t, uow, customerID, order.Paid)

	handler := commands.NewCancelOrderCommandHandler(fakeUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, uow.orders.committedStatus(o.ID()))
}

func TestCancelOrderCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	o := addOrder(t, uow, kernel.NewUUID(), order.Pending)

	handler := commands.NewCancelOrderCommandHandler(fakeUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewCancelOrderCommand(o.ID(), kernel.NewUUID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Pending, uow.orders.committedStatus(o.ID()))
}

func TestCancelOrderCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := t.Context()
	uow := newFakeUoW()
	customerID := kernel.NewUUID()
	o := addOrder(t, uow, customerID, order.Completed)

	handler := commands.NewCancelOrderCommandHandler(fakeUoWFactory{uow}, &recordingPublisher{})
	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Completed, uow.orders.committedStatus(o.ID()))
}
