package usecase

import (
	"context"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/utils"
)

type EarningsUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewEarningsUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *EarningsUseCase {
	return &EarningsUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

type EarningsSummary struct {
	FarmerID       string  `json:"farmer_id"`
	Total          float64 `json:"total"`
	AcceptedOrders int     `json:"accepted_orders"`
}

// TrackEarnings totals a farmer's accepted-order earnings. The two queries
// run strictly in sequence: accepted orders first, then one batched product
// fetch over the distinct referenced identifiers. Each accepted order
// contributes its product's current price once, so repeat orders for the same
// product each count. A farmer with no accepted orders totals exactly 0 and
// triggers no product fetch. Any query failure aborts the computation; no
// partial total is returned.
func (uc *EarningsUseCase) TrackEarnings(ctx context.Context, farmerID string) (*EarningsSummary, error) {
	orders, err := uc.orderRepo.ListAcceptedByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return &EarningsSummary{FarmerID: farmerID}, nil
	}

	productIDs := distinctProductIDs(orders)

	products, err := uc.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	priceByID := make(map[string]float64, len(products))
	for _, product := range products {
		priceByID[product.ID] = utils.ParsePrice(product.Price)
	}

	// Sum per order, not per distinct product: orders referencing a deleted
	// product contribute 0.
	var total float64
	for _, order := range orders {
		total += priceByID[order.ProductID]
	}

	return &EarningsSummary{
		FarmerID:       farmerID,
		Total:          total,
		AcceptedOrders: len(orders),
	}, nil
}

func distinctProductIDs(orders []*entity.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	var ids []string
	for _, order := range orders {
		if order.ProductID == "" {
			continue
		}
		if _, ok := seen[order.ProductID]; ok {
			continue
		}
		seen[order.ProductID] = struct{}{}
		ids = append(ids, order.ProductID)
	}
	return ids
}
