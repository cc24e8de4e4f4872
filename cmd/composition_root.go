package cmd

import (
	"log/slog"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/historyrepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	idGenerator *kernel.OrderIDGenerator
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		idGenerator: kernel.NewOrderIDGenerator(),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.idGenerator)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.transitionUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateOrderActionCommandHandler() commands.OrderActionCommandHandler {
	return commands.NewOrderActionCommandHandler(c.transitionUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCleanupHistoryCommandHandler() commands.CleanupHistoryCommandHandler {
	var f commands.HistoryUoWFactory = FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupHistoryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableTransitionsQueryHandler() queries.GetAvailableTransitionsQueryHandler {
	return queries.NewGetAvailableTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(historyrepo.NewGormHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetHistoryByOperatorQueryHandler() queries.GetHistoryByOperatorQueryHandler {
	return queries.NewGetHistoryByOperatorQueryHandler(historyrepo.NewGormHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetHistoryByTimeRangeQueryHandler() queries.GetHistoryByTimeRangeQueryHandler {
	return queries.NewGetHistoryByTimeRangeQueryHandler(historyrepo.NewGormHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetHistorySummaryQueryHandler() queries.GetHistorySummaryQueryHandler {
	return queries.NewGetHistorySummaryQueryHandler(historyrepo.NewGormHistoryRepository(c.gormDB))
}

func (c *CompositionRoot) CreateHasReachedStatusQueryHandler() queries.HasReachedStatusQueryHandler {
	return queries.NewHasReachedStatusQueryHandler(historyrepo.NewGormHistoryRepository(c.gormDB))
}

// CreateHTTPServer wires every use case into the REST surface.
func (c *CompositionRoot) CreateHTTPServer(serverMetrics *metrics.ServerMetrics) *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	transitionOrder := c.CreateTransitionOrderCommandHandler()
	orderAction := c.CreateOrderActionCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:      &createOrder,
		TransitionOrder:  &transitionOrder,
		OrderAction:      &orderAction,
		GetOrder:         c.CreateGetOrderQueryHandler(),
		CustomerOrders:   c.CreateGetCustomerOrdersQueryHandler(),
		Transitions:      c.CreateGetAvailableTransitionsQueryHandler(),
		OrderHistory:     c.CreateGetOrderHistoryQueryHandler(),
		OperatorHistory:  c.CreateGetHistoryByOperatorQueryHandler(),
		TimeRangeHistory: c.CreateGetHistoryByTimeRangeQueryHandler(),
		HistorySummary:   c.CreateGetHistorySummaryQueryHandler(),
		StatusReached:    c.CreateHasReachedStatusQueryHandler(),
	}, serverMetrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	cleanup := c.CreateCleanupHistoryCommandHandler()
	return jobs.NewJobManager(&cleanup, jobs.HistoryRetention{
		Schedule:   c.config.HistoryCleanupSchedule,
		DaysToKeep: c.config.HistoryRetentionDays,
	}, c.logger)
}

func (c *CompositionRoot) transitionUoWFactory() commands.TransitionUoWFactory {
	return FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}
