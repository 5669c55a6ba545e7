package router

import (
	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
