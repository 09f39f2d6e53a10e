package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByPaymentReference(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetUncompletedByVendor(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// paidOrder builds a Paid single-item order for the given vendor.
func paidOrder(t *testing.T, vendorID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("250.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), vendorID, kernel.NewUUID(),
		[]order.LineItem{item}, kernel.ZeroMoney(), "42 Customer Rd", "PAY123")
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid())
	return o
}

func TestVendorDecideOrderCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	o := paidOrder(t, vendorID)
	cmd, err := commands.NewVendorDecideOrderCommand(o.ID(), vendorID, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.Paid).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	handler := commands.NewVendorDecideOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	changes := publisher.all()
	require.Len(t, changes, 1)
	assert.Equal(t, ports.EntityOrder, changes[0].EntityType)
	assert.Equal(t, "Accepted", changes[0].NewState)
}

func TestVendorDecideOrderCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	o := paidOrder(t, vendorID)
	cmd, err := commands.NewVendorDecideOrderCommand(o.ID(), vendorID, false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil)
	repo.On("Update", mock.Anything, o, order.Paid).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewVendorDecideOrderCommandHandler(factory, &recordingPublisher{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Rejected, o.Status())
}

func TestVendorDecideOrderCommandHandler_Handle_WrongVendor(t *testing.T) {
	ctx := t.Context()
	o := paidOrder(t, kernel.NewUUID())
	imposter := kernel.NewUUID()
	cmd, err := commands.NewVendorDecideOrderCommand(o.ID(), imposter, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	publisher := &recordingPublisher{}
	handler := commands.NewVendorDecideOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Paid, o.Status(), "order unchanged")
	assert.Empty(t, publisher.all())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestVendorDecideOrderCommandHandler_Handle_NotPaid(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()

	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("250.00"))
	require.NoError(t, err)
	pending, err := order.NewOrder(
		kernel.NewUUID(), vendorID, kernel.NewUUID(),
		[]order.LineItem{item}, kernel.ZeroMoney(), "42 Customer Rd", "PAY123")
	require.NoError(t, err)

	cmd, err := commands.NewVendorDecideOrderCommand(pending.ID(), vendorID, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewVendorDecideOrderCommandHandler(factory, &recordingPublisher{})
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, pending.Status())
}
