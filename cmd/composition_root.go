package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/in/ws"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/directoryrepo"
	"laundry/internal/adapters/out/postgres/relay"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/fanout"
	"laundry/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	directory   *directoryrepo.GormDirectory
	registry    *prometheus.Registry
	hub         *fanout.Hub
	relay       *relay.Relay
	broadcaster ports.Broadcaster
	logger      *slog.Logger
}

// NewCompositionRoot builds the long-lived services. With FANOUT_RELAY set to
// postgres, events go through pg_notify and Start must be called before
// serving.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	hub := fanout.NewHub(cfg.OutboxSize, logger, fanout.NewMetrics(registry))
	c := &CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, cfg.StoreTimeout),
		directory:   directoryrepo.NewGormDirectory(gormDB, cfg.StoreTimeout),
		registry:    registry,
		hub:         hub,
		broadcaster: hub,
		logger:      logger,
	}
	if cfg.FanoutRelay == RelayPostgres {
		c.relay = relay.NewRelay(gormDB, cfg.FanoutChannel, hub, logger)
		c.broadcaster = c.relay
	}
	return c
}

// Start opens the relay listener when one is configured.
func (c *CompositionRoot) Start(ctx context.Context) error {
	if c.relay == nil {
		return nil
	}
	if err := c.relay.Start(ctx, c.cfg.DSN()); err != nil {
		return fmt.Errorf("start fan-out relay: %w", err)
	}
	return nil
}

// Close releases the relay listener.
func (c *CompositionRoot) Close() error {
	if c.relay == nil {
		return nil
	}
	return c.relay.Close()
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tierUoW() commands.TierUoWFactory {
	return FuncTierUoWFactory(func() commands.TierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.directory, c.directory, c.broadcaster)
}

func (c *CompositionRoot) CreateSetPriceCommandHandler() commands.SetPriceCommandHandler {
	return commands.NewSetPriceCommandHandler(c.uow(), c.directory, c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateAddTierCommandHandler() commands.AddTierCommandHandler {
	return commands.NewAddTierCommandHandler(c.tierUoW())
}

func (c *CompositionRoot) CreateRemoveTierCommandHandler() commands.RemoveTierCommandHandler {
	return commands.NewRemoveTierCommandHandler(c.tierUoW())
}

func (c *CompositionRoot) CreateCreateNotificationCommandHandler() commands.CreateNotificationCommandHandler {
	return commands.NewCreateNotificationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAnswerNotificationCommandHandler() commands.AnswerNotificationCommandHandler {
	return commands.NewAnswerNotificationCommandHandler(c.uow(), c.broadcaster)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateListShopOrdersQueryHandler() queries.ListShopOrdersQueryHandler {
	return queries.NewListShopOrdersQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateTierQueryHandler() queries.TierQueryHandler {
	return queries.NewTierQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

func (c *CompositionRoot) CreateGetServicePriceQueryHandler() queries.GetServicePriceQueryHandler {
	return queries.NewGetServicePriceQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB, c.cfg.StoreTimeout)
}

// HTTPServer wires every use case into the REST server.
func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		SetPrice:             c.CreateSetPriceCommandHandler(),
		UpdateStatus:         c.CreateUpdateStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		AddTier:              c.CreateAddTierCommandHandler(),
		RemoveTier:           c.CreateRemoveTierCommandHandler(),
		CreateNotification:   c.CreateCreateNotificationCommandHandler(),
		AnswerNotification:   c.CreateAnswerNotificationCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListShopOrders:       c.CreateListShopOrdersQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
		Tiers:                c.CreateTierQueryHandler(),
		ServicePrice:         c.CreateGetServicePriceQueryHandler(),
		ListNotifications:    c.CreateListNotificationsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) WebsocketHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.cfg.PongWait(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.relay == nil {
		return jobs.NewJobManager(c.hub, nil, c.cfg.HeartbeatSchedule, c.logger)
	}
	return jobs.NewJobManager(c.hub, c.relay, c.cfg.HeartbeatSchedule, c.logger)
}

type FuncTierUoWFactory func() commands.TierUoW

func (f FuncTierUoWFactory) Create() commands.TierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
