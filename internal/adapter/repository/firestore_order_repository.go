package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/logger"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}
	if order.ID == "" {
		order.ID = doc.Ref.ID
	}

	return &order, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id, orderStatus string) error {
	_, err := r.client.Collection("orders").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update order status", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.Where("farmerId", "==", farmerID)
	return r.collect(ctx, query)
}

func (r *firestoreOrderRepository) ListByConsumerID(ctx context.Context, consumerID string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.Where("consumerId", "==", consumerID)
	return r.collect(ctx, query)
}

func (r *firestoreOrderRepository) ListAcceptedByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.
		Where("farmerId", "==", farmerID).
		Where("status", "==", entity.OrderStatusAccepted)
	return r.collect(ctx, query)
}

func (r *firestoreOrderRepository) Listen(ctx context.Context, role, userID string) (<-chan []*entity.Order, error) {
	field, err := roleField(role)
	if err != nil {
		return nil, err
	}

	query := r.client.Collection("orders").Query.Where(field, "==", userID)
	snapshots := query.Snapshots(ctx)

	out := make(chan []*entity.Order)
	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("order listener for %s=%s stopped: %v", field, userID, err)
				}
				return
			}

			// Full replace on every notification: rebuild the visible list
			// from the snapshot so it never diverges from store state.
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("order listener failed to read snapshot: %v", err)
				return
			}

			orders := make([]*entity.Order, 0, len(docs))
			for _, doc := range docs {
				var order entity.Order
				if err := doc.DataTo(&order); err != nil {
					logger.Warn("skipping undecodable order %s: %v", doc.Ref.ID, err)
					continue
				}
				if order.ID == "" {
					order.ID = doc.Ref.ID
				}
				orders = append(orders, &order)
			}

			select {
			case out <- orders:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *firestoreOrderRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		if order.ID == "" {
			order.ID = doc.Ref.ID
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func roleField(role string) (string, error) {
	switch role {
	case "farmer":
		return "farmerId", nil
	case "consumer":
		return "consumerId", nil
	default:
		return "", errors.BadRequest("Invalid role", nil)
	}
}
