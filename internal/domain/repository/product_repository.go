package repository

import (
	"context"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs batch-fetches products with the store's in-filter. Identifier
	// sets larger than the backend's batch bound are split into multiple
	// queries and the results merged.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	SearchByName(ctx context.Context, query string) ([]*entity.Product, error)
}
