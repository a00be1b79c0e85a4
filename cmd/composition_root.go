package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInventoryItemCommandHandler() commands.UpdateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertInventoryItemCommandHandler() commands.UpsertInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllWorkersQueryHandler() queries.GetAllWorkersQueryHandler {
	return queries.NewGetAllWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerQueryHandler() queries.GetWorkerQueryHandler {
	return queries.NewGetWorkerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerPerformanceQueryHandler() queries.GetWorkerPerformanceQueryHandler {
	return queries.NewGetWorkerPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllInventoryQueryHandler() queries.GetAllInventoryQueryHandler {
	return queries.NewGetAllInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKpisQueryHandler() queries.GetKpisQueryHandler {
	return queries.NewGetKpisQueryHandler(c.gormDB)
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
