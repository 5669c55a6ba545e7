package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/usecase"
	"github.com/harshverma27/Kissan-Connect/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	consumerID := c.Get("uid").(string)

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), consumerID, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

// ListOrders returns the caller's orders with product names joined in. The
// list is scoped by the caller's role.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	farmerID := c.Get("uid").(string)
	orderID := c.Param("id")

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), farmerID, orderID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
