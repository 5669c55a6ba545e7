package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// FarmerOnly restricts a route to authenticated users whose profile role is
// Farmer.
func (m *RoleMiddleware) FarmerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(entity.RoleFarmer, next)
}

// ConsumerOnly restricts a route to authenticated users whose profile role is
// Consumer.
func (m *RoleMiddleware) ConsumerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(entity.RoleConsumer, next)
}

func (m *RoleMiddleware) requireRole(role string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify user role")
		}

		if user.Role != role {
			return echo.NewHTTPError(http.StatusForbidden, role+" role required")
		}

		return next(c)
	}
}
