package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

type FileStorage interface {
	UploadProductImage(ctx context.Context, farmerID string, file io.Reader, contentType string) (string, error)
	DeleteByURL(ctx context.Context, fileURL string) error
}

type ProductNameCache interface {
	Get(ctx context.Context, productID string) (string, bool)
	Set(ctx context.Context, productID, name string)
	Invalidate(ctx context.Context, productID string)
}
