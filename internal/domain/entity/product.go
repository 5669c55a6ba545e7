package entity

import (
	"time"
)

// Product is a produce listing owned by a farmer. Price is kept as text the
// way the mobile clients wrote it; no numeric invariant is enforced at write
// time, so consumers of the field must parse defensively.
type Product struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Price     string    `json:"price" firestore:"price"`
	ImageURL  string    `json:"image_url" firestore:"imageUrl"`
	FarmerID  string    `json:"farmer_id" firestore:"farmerId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
