package handler

import (
	"github.com/harshverma27/Kissan-Connect/internal/usecase"
)

var (
	authHandler     *AuthHandler
	productHandler  *ProductHandler
	orderHandler    *OrderHandler
	earningsHandler *EarningsHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	earningsUseCase *usecase.EarningsUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	earningsHandler = NewEarningsHandler(earningsUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetEarningsHandler() *EarningsHandler {
	return earningsHandler
}
