package router

import (
	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/handler"
	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	// The consumer-facing catalog requires a signed-in user but no particular
	// role.
	products := e.Group("/v1/products")
	products.Use(authMiddleware.Authenticate)
	products.GET("", productHandler.BrowseProducts)
	products.GET("/:id", productHandler.GetProduct)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(roleMiddleware.FarmerOnly)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.PUT("/:id", productHandler.UpdateProduct)
	myProducts.DELETE("/:id", productHandler.DeleteProduct)
}
