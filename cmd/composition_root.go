package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/catalog"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All construction
// decisions live here so the rest of the code depends on interfaces only.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notify.LogNotifier
	policy     delivery.TransitionPolicy
	schedule   commands.DwellSchedule
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	policy := delivery.Permissive
	if config.StrictTransitions {
		policy = delivery.Strict
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, policy),
		notifier:   notify.NewLogNotifier(logger),
		policy:     policy,
		schedule:   dwellSchedule(config),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		catalog.NewGormCatalogReader(c.gormDB),
		catalog.NewGormShippingMethodReader(c.gormDB),
		catalog.NewGormAddressReader(c.gormDB),
		c.policy,
	)
}

func (c *CompositionRoot) CreateMarkDeliveryShippedCommandHandler() commands.MarkDeliveryShippedCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveryShippedCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateProgressDeliveriesCommandHandler() commands.ProgressDeliveriesCommandHandler {
	var f commands.DeliveryOrderUoWFactory = FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProgressDeliveriesCommandHandler(f, c.notifier, c.schedule, c.logger)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

// dwellSchedule applies configured overrides on top of the default dwell
// times.
func dwellSchedule(config Config) commands.DwellSchedule {
	schedule := commands.DefaultDwellSchedule()
	overrides := commands.DwellSchedule{
		delivery.Pending:        config.PendingDwell,
		delivery.Preparing:      config.PreparingDwell,
		delivery.Shipped:        config.ShippedDwell,
		delivery.InTransit:      config.InTransitDwell,
		delivery.OutForDelivery: config.OutForDeliveryDwell,
	}
	for status, dwell := range overrides {
		if dwell > 0 {
			schedule[status] = dwell
		}
	}
	return schedule
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}
