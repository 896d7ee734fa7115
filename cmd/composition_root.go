package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"commerce/internal/adapters/out/postgres"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	return commands.NewAddStockCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.AdmissionUoWFactory = FuncAdmissionUoWFactory(func() commands.AdmissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateTransporterCommandHandler() commands.CreateTransporterCommandHandler {
	var f commands.TransporterUoWFactory = FuncTransporterUoWFactory(func() commands.TransporterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransporterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAssignTransporterCommandHandler() commands.AssignTransporterCommandHandler {
	return commands.NewAssignTransporterCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateFlagDelayedDeliveriesCommandHandler() commands.FlagDelayedDeliveriesCommandHandler {
	return commands.NewFlagDelayedDeliveriesCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	return commands.NewProcessPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchProductsQueryHandler() queries.SearchProductsQueryHandler {
	return queries.NewSearchProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByStatusQueryHandler() queries.GetDeliveriesByStatusQueryHandler {
	return queries.NewGetDeliveriesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUpcomingDeliveriesQueryHandler() queries.GetUpcomingDeliveriesQueryHandler {
	return queries.NewGetUpcomingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncAdmissionUoWFactory func() commands.AdmissionUoW

func (f FuncAdmissionUoWFactory) Create() commands.AdmissionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncTransporterUoWFactory func() commands.TransporterUoW

func (f FuncTransporterUoWFactory) Create() commands.TransporterUoW {
	return f()
}
