package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/harshverma27/Kissan-Connect/internal/usecase"
	"github.com/harshverma27/Kissan-Connect/pkg/response"
)

type EarningsHandler struct {
	earningsUseCase *usecase.EarningsUseCase
}

func NewEarningsHandler(earningsUseCase *usecase.EarningsUseCase) *EarningsHandler {
	return &EarningsHandler{
		earningsUseCase: earningsUseCase,
	}
}

// TrackEarnings returns the calling farmer's accepted-order earnings summary.
func (h *EarningsHandler) TrackEarnings(c echo.Context) error {
	farmerID := c.Get("uid").(string)

	summary, err := h.earningsUseCase.TrackEarnings(c.Request().Context(), farmerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
