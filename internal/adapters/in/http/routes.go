package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const openapiPath = "/api/openapi.json"

// RegisterHandlers mounts the REST API under /api/v1.
func RegisterHandlers(e *echo.Echo, s *Server) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers/:customerId/orders", s.CreateOrder)
	v1.GET("/customers/:customerId/orders", s.ListCustomerOrders)
	v1.GET("/orders", s.ListShopOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.PUT("/orders/:orderId/price", s.SetPrice)
	v1.PUT("/orders/:orderId/status", s.UpdateStatus)
	v1.PUT("/orders/:orderId/cancel", s.CancelOrder)

	v1.GET("/shops/:shopId/tiers", s.ListTiers)
	v1.POST("/shops/:shopId/tiers", s.AddTier)
	v1.DELETE("/shops/:shopId/tiers", s.RemoveTier)
	v1.GET("/shops/:shopId/tiers/resolve", s.ResolveTier)
	v1.GET("/shops/:shopId/services/:name/price", s.GetServicePrice)

	v1.POST("/notifications", s.CreateNotification)
	v1.GET("/recipients/:recipientId/notifications", s.ListNotifications)
	v1.POST("/notifications/:id/accept", s.AcceptNotification)
	v1.POST("/notifications/:id/decline", s.DeclineNotification)
	v1.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// RegisterSystemHandlers mounts health, metrics and API documentation.
func RegisterSystemHandlers(e *echo.Echo, doc *openapi3.T, gatherer prometheus.Gatherer) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET(openapiPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(openapiPath)))
}
