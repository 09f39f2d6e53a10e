package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.ChangePublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.ChangePublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateSubmitOrderBatchCommandHandler() commands.SubmitOrderBatchCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateVendorDecideOrderCommandHandler() commands.VendorDecideOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVendorDecideOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateClaimTaskCommandHandler() commands.ClaimTaskCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimTaskCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceTaskCommandHandler() commands.AdvanceTaskCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTaskCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetCandidateTasksQueryHandler() queries.GetCandidateTasksQueryHandler {
	return queries.NewGetCandidateTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedVendorOrdersQueryHandler() queries.GetUncompletedVendorOrdersQueryHandler {
	return queries.NewGetUncompletedVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePaymentsQueryHandler() queries.GetStalePaymentsQueryHandler {
	return queries.NewGetStalePaymentsQueryHandler(c.gormDB)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
