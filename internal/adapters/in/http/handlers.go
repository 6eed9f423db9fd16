package http

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Use cases served over HTTP. The command and query handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
	}
	SetPriceHandler interface {
		Handle(ctx context.Context, cmd commands.SetPriceCommand) (commands.OrderChange, error)
	}
	UpdateStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateStatusCommand) (commands.OrderChange, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (commands.OrderChange, error)
	}
	AddTierHandler interface {
		Handle(ctx context.Context, cmd commands.AddTierCommand) (kernel.UUID, error)
	}
	RemoveTierHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveTierCommand) (bool, error)
	}
	CreateNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.CreateNotificationCommand) (kernel.UUID, error)
	}
	AnswerNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.AnswerNotificationCommand) (commands.AnswerResult, error)
	}
	MarkNotificationReadHandler interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListShopOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListShopOrdersQuery) ([]queries.OrderView, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error)
	}
	TierReader interface {
		List(ctx context.Context, query queries.ListTiersQuery) ([]queries.TierView, error)
		Resolve(ctx context.Context, query queries.ResolveTierQuery) (queries.TierView, error)
	}
	ServicePriceHandler interface {
		Handle(ctx context.Context, query queries.GetServicePriceQuery) (decimal.Decimal, error)
	}
	ListNotificationsHandler interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	SetPrice             SetPriceHandler
	UpdateStatus         UpdateStatusHandler
	CancelOrder          CancelOrderHandler
	AddTier              AddTierHandler
	RemoveTier           RemoveTierHandler
	CreateNotification   CreateNotificationHandler
	AnswerNotification   AnswerNotificationHandler
	MarkNotificationRead MarkNotificationReadHandler

	GetOrder           GetOrderHandler
	ListShopOrders     ListShopOrdersHandler
	ListCustomerOrders ListCustomerOrdersHandler
	Tiers              TierReader
	ServicePrice       ServicePriceHandler
	ListNotifications  ListNotificationsHandler
}
