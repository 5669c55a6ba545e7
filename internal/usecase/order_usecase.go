package usecase

import (
	"context"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/logger"
)

const unknownProductName = "Unknown Product"

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	nameCache   ProductNameCache
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	nameCache ProductNameCache,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		nameCache:   nameCache,
	}
}

// OrderView is an order joined with its product's display name.
type OrderView struct {
	*entity.Order
	ProductName string `json:"product_name"`
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, consumerID, productID string) (*entity.Order, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.FarmerID == consumerID {
		return nil, errors.BadRequest("Cannot order your own product", nil)
	}

	order := &entity.Order{
		ProductID:  productID,
		ConsumerID: consumerID,
		// The owner is copied onto the order so farmer-side queries never
		// have to join through products.
		FarmerID: product.FarmerID,
		Status:   entity.OrderStatusPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the caller's orders scoped by their role: a farmer sees
// orders placed against their products, a consumer their own order history.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string) ([]OrderView, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	var orders []*entity.Order
	switch {
	case user.IsFarmer():
		orders, err = uc.orderRepo.ListByFarmerID(ctx, userID)
	case user.IsConsumer():
		orders, err = uc.orderRepo.ListByConsumerID(ctx, userID)
	default:
		return nil, errors.BadRequest("Unknown user role", nil)
	}
	if err != nil {
		return nil, err
	}

	return uc.joinProductNames(ctx, orders), nil
}

// UpdateStatus applies a farmer's accept/reject decision. Only the owning
// farmer may decide, and only while the order is still pending.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, farmerID, orderID, newStatus string) (*entity.Order, error) {
	if newStatus != entity.OrderStatusAccepted && newStatus != entity.OrderStatusRejected {
		return nil, errors.BadRequest("Status must be Accepted or Rejected", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.FarmerID != farmerID {
		return nil, errors.Forbidden("You don't have permission to update this order", nil)
	}

	if order.Status != entity.OrderStatusPending {
		return nil, errors.BadRequest("Only pending orders can be accepted or rejected", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}

	order.Status = newStatus
	return order, nil
}

// StreamOrders subscribes the caller to live updates of their role-scoped
// order list. Every notification carries the full rebuilt list with product
// names re-joined; the name cache absorbs the repeated lookups that implies.
func (uc *OrderUseCase) StreamOrders(ctx context.Context, userID string) (<-chan []OrderView, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	var role string
	switch {
	case user.IsFarmer():
		role = "farmer"
	case user.IsConsumer():
		role = "consumer"
	default:
		return nil, errors.BadRequest("Unknown user role", nil)
	}

	snapshots, err := uc.orderRepo.Listen(ctx, role, userID)
	if err != nil {
		return nil, err
	}

	out := make(chan []OrderView)
	go func() {
		defer close(out)
		for orders := range snapshots {
			select {
			case out <- uc.joinProductNames(ctx, orders):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// joinProductNames resolves each order's product name for display. Cached
// names are used where present; the rest are batch-fetched once per distinct
// identifier. Resolution failures degrade to a placeholder name rather than
// failing the listing.
func (uc *OrderUseCase) joinProductNames(ctx context.Context, orders []*entity.Order) []OrderView {
	names := make(map[string]string)
	var missing []string

	for _, order := range orders {
		if _, seen := names[order.ProductID]; seen {
			continue
		}
		if name, ok := uc.nameCache.Get(ctx, order.ProductID); ok {
			names[order.ProductID] = name
			continue
		}
		names[order.ProductID] = unknownProductName
		missing = append(missing, order.ProductID)
	}

	if len(missing) > 0 {
		products, err := uc.productRepo.GetByIDs(ctx, missing)
		if err != nil {
			logger.Warn("failed to resolve product names for %d orders: %v", len(missing), err)
		} else {
			for _, product := range products {
				names[product.ID] = product.Name
				uc.nameCache.Set(ctx, product.ID, product.Name)
			}
		}
	}

	views := make([]OrderView, len(orders))
	for i, order := range orders {
		views[i] = OrderView{
			Order:       order,
			ProductName: names[order.ProductID],
		}
	}

	return views
}
