package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "github.com/harshverma27/Kissan-Connect/internal/infrastructure/websocket"
	"github.com/harshverma27/Kissan-Connect/internal/usecase"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/logger"
	"github.com/harshverma27/Kissan-Connect/pkg/response"
)

type WebSocketHandler struct {
	wsManager    *ws.Manager
	orderUseCase *usecase.OrderUseCase
	authClient   usecase.FirebaseAuthClient
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, orderUseCase *usecase.OrderUseCase, authClient usecase.FirebaseAuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:    wsManager,
		orderUseCase: orderUseCase,
		authClient:   authClient,
	}
}

// StreamOrders upgrades the connection and pushes the caller's full order
// list, names joined, on every backend change. Browsers cannot set headers on
// websocket requests, so the ID token arrives as a query parameter.
func (h *WebSocketHandler) StreamOrders(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Token is required", nil))
	}

	userID, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	// The request context dies with this handler; the stream must outlive it.
	ctx, cancel := context.WithCancel(context.Background())

	views, err := h.orderUseCase.StreamOrders(ctx, userID)
	if err != nil {
		cancel()
		return response.Error(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		cancel()
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.WritePump()
	go func() {
		defer cancel()
		client.ReadPump(h.wsManager)
	}()

	go func() {
		for list := range views {
			payload, err := json.Marshal(list)
			if err != nil {
				logger.Error("failed to encode order stream payload: %v", err)
				continue
			}
			h.wsManager.SendToUser(userID, payload)
		}
	}()

	return nil
}
