package repository

import (
	"context"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error)
	ListByConsumerID(ctx context.Context, consumerID string) ([]*entity.Order, error)
	ListAcceptedByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error)
	// Listen subscribes to live changes for the given role-scoped filter
	// ("farmer" matches farmerId, "consumer" matches consumerId). Each
	// notification carries the full result set rebuilt from the snapshot, not
	// an incremental patch. The channel is closed when ctx is cancelled or the
	// listener fails.
	Listen(ctx context.Context, role, userID string) (<-chan []*entity.Order, error)
}
