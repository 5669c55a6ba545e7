package entity

import (
	"time"
)

const (
	OrderStatusPending  = "Pending"
	OrderStatusAccepted = "Accepted"
	OrderStatusRejected = "Rejected"
)

// Order records a consumer's request for a product. FarmerID is a
// denormalized copy of the product's owner taken at order time so that a
// farmer's orders can be queried without joining through products. Orders are
// never deleted; status only moves Pending -> Accepted or Pending -> Rejected.
type Order struct {
	ID         string    `json:"id" firestore:"id"`
	ProductID  string    `json:"product_id" firestore:"productId"`
	ConsumerID string    `json:"consumer_id" firestore:"consumerId"`
	FarmerID   string    `json:"farmer_id" firestore:"farmerId"`
	Status     string    `json:"status" firestore:"status"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
