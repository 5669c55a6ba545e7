package usecase

import (
	"context"
	"io"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	"github.com/harshverma27/Kissan-Connect/internal/domain/repository"
	"github.com/harshverma27/Kissan-Connect/pkg/errors"
	"github.com/harshverma27/Kissan-Connect/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	storage     FileStorage
	nameCache   ProductNameCache
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	storage FileStorage,
	nameCache ProductNameCache,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		storage:     storage,
		nameCache:   nameCache,
	}
}

type ProductInput struct {
	Name             string
	Price            string
	Image            io.Reader
	ImageContentType string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, farmerID string, input ProductInput) (*entity.Product, error) {
	farmer, err := uc.userRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid farmer", err)
	}
	if !farmer.IsFarmer() {
		return nil, errors.Forbidden("Only farmers can list products", nil)
	}

	// Image may be absent; the listing then carries an empty URL until a
	// later update uploads one.
	var imageURL string
	if input.Image != nil {
		imageURL, err = uc.storage.UploadProductImage(ctx, farmerID, input.Image, input.ImageContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload product image", err)
		}
	}

	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: imageURL,
		FarmerID: farmerID,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, farmerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.FarmerID != farmerID {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	if input.Image != nil {
		// Replace the image: drop the old object first, then upload. A failed
		// delete only orphans a blob, so it is logged and not fatal.
		if product.ImageURL != "" {
			if err := uc.storage.DeleteByURL(ctx, product.ImageURL); err != nil {
				logger.Warn("failed to delete old image for product %s: %v", id, err)
			}
		}
		imageURL, err := uc.storage.UploadProductImage(ctx, farmerID, input.Image, input.ImageContentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload product image", err)
		}
		product.ImageURL = imageURL
	}

	product.Name = input.Name
	product.Price = input.Price

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.nameCache.Invalidate(ctx, id)

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, farmerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.FarmerID != farmerID {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	if product.ImageURL != "" {
		if err := uc.storage.DeleteByURL(ctx, product.ImageURL); err != nil {
			logger.Warn("failed to delete image for product %s: %v", id, err)
		}
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.nameCache.Invalidate(ctx, id)

	return nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, farmerID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByFarmerID(ctx, farmerID)
}

// BrowseProducts returns the full catalog, narrowed by a case-insensitive
// substring match on the name when a query is given.
func (uc *ProductUseCase) BrowseProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	if query == "" {
		return uc.productRepo.ListAll(ctx)
	}
	return uc.productRepo.SearchByName(ctx, query)
}
