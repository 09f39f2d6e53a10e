package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/riderrepo"
	"marketplace/internal/adapters/out/postgres/taskrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work against a
// real PostgreSQL database: transaction lifecycle, cross-repository
// atomicity, and rollback behavior.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&taskrepo.TaskDTO{},
		&riderrepo.RiderDTO{},
		&paymentrepo.StagedPaymentDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, delivery_tasks, riders, staged_payments").Error)
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIndependentInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutTransaction_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	staged := suite.createStagedPayment("PAY-UOW-001")
	testOrder := suite.createTestOrder("PAY-UOW-001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, staged))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work sees both writes.
	check := suite.factory.Create()
	loadedPayment, err := check.PaymentRepository().GetByReference(ctx, "PAY-UOW-001")
	suite.Require().NoError(err)
	suite.Equal(payment.Staged, loadedPayment.Status())

	loadedOrder, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loadedOrder.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	staged := suite.createStagedPayment("PAY-UOW-002")
	testOrder := suite.createTestOrder("PAY-UOW-002")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, staged))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.PaymentRepository().GetByReference(ctx, "PAY-UOW-002")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.OrderRepository().Get(ctx, testOrder.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDispatchWorkflow_OrderAndTaskCommitTogether() {
	ctx := context.Background()

	// Seed an accepted order outside the transaction under test.
	seed := suite.factory.Create()
	testOrder := suite.createTestOrder("PAY-UOW-003")
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.Commit(ctx))

	zone, err := kernel.NewZone("NORTH")
	suite.Require().NoError(err)
	testTask, err := task.NewTask(
		kernel.NewUUID(), testOrder.ID(), testOrder.VendorID(), zone,
		"7 Market Square", testOrder.DeliveryAddress(), testOrder.PaymentReference(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testTask.AssignSequence(1, 1))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TaskRepository().Add(ctx, testTask))
	suite.Require().NoError(uow.TaskRepository().UpdateSequence(ctx, testTask))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	loaded, err := check.TaskRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(task.Pending, loaded.Status())
	suite.Equal(1, loaded.PickupSequence())
	suite.Equal(1, loaded.TotalStops())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_UseBaseConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("PAY-UOW-004")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(loaded.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(reference string) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("250.00"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item},
		kernel.MustMoney("50.00"), "12 Harbour Lane", reference,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createStagedPayment(reference string) *payment.StagedPayment {
	staged, err := payment.NewStagedPayment(reference, kernel.MustMoney("300.00"))
	suite.Require().NoError(err)
	return staged
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
