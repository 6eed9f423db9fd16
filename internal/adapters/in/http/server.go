package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server handles the REST API. It decodes requests, builds commands and
// queries, and maps their results and errors back to JSON.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a server dispatching to the given handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/customers/:customerId/orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := pathID(ctx, "customerId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	shopID, err := kernel.ParseID("shop_id", body.ShopID)
	if err != nil {
		return s.fail(ctx, err)
	}

	services := make([]order.ServiceLine, len(body.Services))
	for i, line := range body.Services {
		services[i] = order.ServiceLine{Name: strings.TrimSpace(line.Name), Price: line.Price}
	}
	items := make([]order.ItemLine, len(body.Items))
	for i, line := range body.Items {
		items[i] = order.ItemLine{Name: strings.TrimSpace(line.Name), Quantity: line.Quantity}
	}
	cart, err := order.NewCart(services, items)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, shopID, commands.OrderDetails{
		Cart:   cart,
		Weight: body.KiloAmount,
		Amounts: order.Amounts{
			Subtotal:        body.Subtotal,
			DeliveryFee:     body.DeliveryFee,
			VoucherDiscount: body.VoucherDiscount,
		},
		Delivery: order.Delivery{
			Type:     body.DeliveryType,
			Zone:     body.Zone,
			Street:   body.Street,
			Barangay: body.Barangay,
			Building: body.Building,
		},
		Schedule:      order.Schedule{Date: body.ScheduledDate, Time: body.ScheduledTime},
		PaymentMethod: body.PaymentMethod,
		Notes:         body.Notes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - returns one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// ListShopOrders handles GET /api/v1/orders?shop_id=&status= - lists a
// shop's orders, newest first.
func (s *Server) ListShopOrders(ctx echo.Context) error {
	var shopID openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, true, "shop_id", ctx.QueryParams(), &shopID); err != nil {
		return badRequest(ctx, "Invalid format for parameter shop_id: "+err.Error())
	}
	var statusName *string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &statusName); err != nil {
		return badRequest(ctx, "Invalid format for parameter status: "+err.Error())
	}

	id, err := kernel.UUIDFromBytes(shopID[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("shop_id", err))
	}
	var status *order.Status
	if statusName != nil && *statusName != "" {
		parsed, parseErr := order.ParseStatus(*statusName)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListShopOrdersQuery(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListShopOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// ListCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := pathID(ctx, "customerId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// SetPrice handles PUT /api/v1/orders/:orderId/price - quotes the per-kilo
// price of a pending order.
func (s *Server) SetPrice(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body SetPrice
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPriceCommand(orderID, body.PricePerKilo)
	if err != nil {
		return s.fail(ctx, err)
	}
	change, err := s.h.SetPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderStatus(change))
}

// UpdateStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body UpdateStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusCommand(orderID, status, body.Notes)
	if err != nil {
		return s.fail(ctx, err)
	}
	change, err := s.h.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderStatus(change))
}

// CancelOrder handles PUT /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason, body.Notes)
	if err != nil {
		return s.fail(ctx, err)
	}
	change, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderStatus(change))
}

// ListTiers handles GET /api/v1/shops/:shopId/tiers.
func (s *Server) ListTiers(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListTiersQuery(shopID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.Tiers.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	response := make([]Tier, len(views))
	for i, v := range views {
		response[i] = toTier(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddTier handles POST /api/v1/shops/:shopId/tiers.
func (s *Server) AddTier(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewTier
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddTierCommand(shopID, body.MinKilo, body.MaxKilo, body.PricePerKilo)
	if err != nil {
		return s.fail(ctx, err)
	}
	tierID, err := s.h.AddTier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: tierID.String()})
}

// RemoveTier handles DELETE /api/v1/shops/:shopId/tiers?min=&max= - removes
// the tier spanning exactly [min, max].
func (s *Server) RemoveTier(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopId")
	if err != nil {
		return s.fail(ctx, err)
	}
	minWeight, err := queryDecimal(ctx, "min")
	if err != nil {
		return s.fail(ctx, err)
	}
	maxWeight, err := queryDecimal(ctx, "max")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveTierCommand(shopID, minWeight, maxWeight)
	if err != nil {
		return s.fail(ctx, err)
	}
	removed, err := s.h.RemoveTier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !removed {
		s.logger.Debug("no tier matched", "shop_id", shopID.String(), "min", minWeight.String(), "max", maxWeight.String())
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResolveTier handles GET /api/v1/shops/:shopId/tiers/resolve?weight=.
func (s *Server) ResolveTier(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopId")
	if err != nil {
		return s.fail(ctx, err)
	}
	weight, err := queryDecimal(ctx, "weight")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewResolveTierQuery(shopID, weight)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.Tiers.Resolve(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTier(view))
}

// GetServicePrice handles GET /api/v1/shops/:shopId/services/:name/price.
func (s *Server) GetServicePrice(ctx echo.Context) error {
	shopID, err := pathID(ctx, "shopId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var name string
	if err = runtime.BindStyledParameterWithOptions("simple", "name", ctx.Param("name"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		return badRequest(ctx, "Invalid format for parameter name: "+err.Error())
	}

	query, err := queries.NewGetServicePriceQuery(shopID, name)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := s.h.ServicePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ServicePrice{ServiceName: strings.TrimSpace(name), Price: price})
}

// CreateNotification handles POST /api/v1/notifications.
func (s *Server) CreateNotification(ctx echo.Context) error {
	var body NewNotification
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	recipientID, err := kernel.ParseID("recipient_id", body.RecipientID)
	if err != nil {
		return s.fail(ctx, err)
	}
	var linked *kernel.UUID
	if body.LinkedTransactionID != nil && *body.LinkedTransactionID != "" {
		id, parseErr := kernel.ParseID("linked_transaction_id", *body.LinkedTransactionID)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		linked = &id
	}

	cmd, err := commands.NewCreateNotificationCommand(recipientID, body.Message, body.FromName, linked)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := s.h.CreateNotification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// ListNotifications handles GET /api/v1/recipients/:recipientId/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	recipientID, err := pathID(ctx, "recipientId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListNotificationsQuery(recipientID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	response := make([]Notification, len(views))
	for i, v := range views {
		response[i] = toNotification(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptNotification handles POST /api/v1/notifications/:id/accept.
func (s *Server) AcceptNotification(ctx echo.Context) error {
	return s.answer(ctx, commands.NewAcceptNotificationCommand)
}

// DeclineNotification handles POST /api/v1/notifications/:id/decline.
func (s *Server) DeclineNotification(ctx echo.Context) error {
	return s.answer(ctx, commands.NewDeclineNotificationCommand)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkNotificationReadCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) answer(
	ctx echo.Context,
	newCommand func(kernel.UUID) (commands.AnswerNotificationCommand, error),
) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := newCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.AnswerNotification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	response := Answer{Changed: result.Changed}
	if result.Order != nil {
		status := orderStatus(*result.Order)
		response.Order = &status
	}
	return ctx.JSON(http.StatusOK, response)
}

func orderStatus(change commands.OrderChange) OrderStatus {
	return OrderStatus{TransactionID: change.OrderID.String(), Status: change.Status.String()}
}

// pathID binds a uuid path parameter the way generated oapi-codegen servers do.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func queryDecimal(ctx echo.Context, name string) (decimal.Decimal, error) {
	var raw string
	if err := runtime.BindQueryParameter("form", true, true, name, ctx.QueryParams(), &raw); err != nil {
		return decimal.Decimal{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, errors.New("not a number"))
	}
	return value, nil
}
