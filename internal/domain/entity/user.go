package entity

import (
	"time"
)

const (
	RoleFarmer   = "Farmer"
	RoleConsumer = "Consumer"
)

// User mirrors a document in the "users" collection. The document ID equals
// the Firebase Auth UID and is written once at sign-up.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"userType"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsFarmer() bool {
	return u.Role == RoleFarmer
}

func (u *User) IsConsumer() bool {
	return u.Role == RoleConsumer
}
