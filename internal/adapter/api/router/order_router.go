package router

import (
	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/handler"
	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()
	earningsHandler := handler.GetEarningsHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder, roleMiddleware.ConsumerOnly)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, roleMiddleware.FarmerOnly)

	earnings := e.Group("/v1/earnings")
	earnings.Use(authMiddleware.Authenticate)
	earnings.Use(roleMiddleware.FarmerOnly)
	earnings.GET("", earningsHandler.TrackEarnings)
}
