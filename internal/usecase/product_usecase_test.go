package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
	apperrors "github.com/harshverma27/Kissan-Connect/pkg/errors"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	t.Run("farmer lists a product with an image", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		storage := new(MockFileStorage)

		userRepo.On("GetByID", mock.Anything, "farmer-1").
			Return(&entity.User{ID: "farmer-1", Role: entity.RoleFarmer}, nil)
		storage.On("UploadProductImage", mock.Anything, "farmer-1", mock.Anything, "image/jpeg").
			Return("https://storage.googleapis.com/bucket/products/farmer-1/x.jpg", nil)
		productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.FarmerID == "farmer-1" && p.ImageURL != ""
		})).Return(nil)

		uc := NewProductUseCase(productRepo, userRepo, storage, newMemoryNameCache())

		product, err := uc.CreateProduct(context.Background(), "farmer-1", ProductInput{
			Name:             "Tomatoes",
			Price:            "120.50",
			Image:            strings.NewReader("jpeg bytes"),
			ImageContentType: "image/jpeg",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Tomatoes", product.Name)
		assert.Equal(t, "120.50", product.Price)
		productRepo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("image is optional", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		storage := new(MockFileStorage)

		userRepo.On("GetByID", mock.Anything, "farmer-1").
			Return(&entity.User{ID: "farmer-1", Role: entity.RoleFarmer}, nil)
		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		uc := NewProductUseCase(productRepo, userRepo, storage, newMemoryNameCache())

		product, err := uc.CreateProduct(context.Background(), "farmer-1", ProductInput{
			Name:  "Onions",
			Price: "75",
		})

		assert.NoError(t, err)
		assert.Empty(t, product.ImageURL)
		storage.AssertNotCalled(t, "UploadProductImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("consumers cannot list products", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, "consumer-1").
			Return(&entity.User{ID: "consumer-1", Role: entity.RoleConsumer}, nil)

		uc := NewProductUseCase(new(MockProductRepository), userRepo, new(MockFileStorage), newMemoryNameCache())

		product, err := uc.CreateProduct(context.Background(), "consumer-1", ProductInput{
			Name:  "Tomatoes",
			Price: "120.50",
		})

		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, "FORBIDDEN"))
		assert.Nil(t, product)
	})

	t.Run("price text is stored untouched", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)

		userRepo.On("GetByID", mock.Anything, "farmer-1").
			Return(&entity.User{ID: "farmer-1", Role: entity.RoleFarmer}, nil)
		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		uc := NewProductUseCase(productRepo, userRepo, new(MockFileStorage), newMemoryNameCache())

		product, err := uc.CreateProduct(context.Background(), "farmer-1", ProductInput{
			Name:  "Wheat",
			Price: "40 per kg",
		})

		assert.NoError(t, err)
		assert.Equal(t, "40 per kg", product.Price)
	})
}

func TestProductUseCase_UpdateProduct(t *testing.T) {
	t.Run("replacing an image drops the old object first", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		storage := new(MockFileStorage)

		productRepo.On("GetByID", mock.Anything, "p1").
			Return(&entity.Product{ID: "p1", Name: "Tomatoes", FarmerID: "farmer-1", ImageURL: "https://storage.googleapis.com/bucket/old.jpg"}, nil)
		storage.On("DeleteByURL", mock.Anything, "https://storage.googleapis.com/bucket/old.jpg").
			Return(nil)
		storage.On("UploadProductImage", mock.Anything, "farmer-1", mock.Anything, "image/png").
			Return("https://storage.googleapis.com/bucket/new.png", nil)
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ImageURL == "https://storage.googleapis.com/bucket/new.png"
		})).Return(nil)

		uc := NewProductUseCase(productRepo, new(MockUserRepository), storage, newMemoryNameCache())

		product, err := uc.UpdateProduct(context.Background(), "p1", "farmer-1", ProductInput{
			Name:             "Tomatoes",
			Price:            "130",
			Image:            strings.NewReader("png bytes"),
			ImageContentType: "image/png",
		})

		assert.NoError(t, err)
		assert.Equal(t, "130", product.Price)
		storage.AssertExpectations(t)
	})

	t.Run("rename invalidates the cached product name", func(t *testing.T) {
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", mock.Anything, "p1").
			Return(&entity.Product{ID: "p1", Name: "Tomatoes", FarmerID: "farmer-1"}, nil)
		productRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		nameCache := newMemoryNameCache()
		nameCache.Set(context.Background(), "p1", "Tomatoes")

		uc := NewProductUseCase(productRepo, new(MockUserRepository), new(MockFileStorage), nameCache)

		_, err := uc.UpdateProduct(context.Background(), "p1", "farmer-1", ProductInput{
			Name:  "Cherry Tomatoes",
			Price: "150",
		})

		assert.NoError(t, err)
		_, cached := nameCache.Get(context.Background(), "p1")
		assert.False(t, cached)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", mock.Anything, "p1").
			Return(&entity.Product{ID: "p1", Name: "Tomatoes", FarmerID: "farmer-1"}, nil)

		uc := NewProductUseCase(productRepo, new(MockUserRepository), new(MockFileStorage), newMemoryNameCache())

		product, err := uc.UpdateProduct(context.Background(), "p1", "farmer-2", ProductInput{
			Name:  "Tomatoes",
			Price: "130",
		})

		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, "FORBIDDEN"))
		assert.Nil(t, product)
		productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductUseCase_DeleteProduct(t *testing.T) {
	t.Run("delete removes the stored image and the cached name", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		storage := new(MockFileStorage)

		productRepo.On("GetByID", mock.Anything, "p1").
			Return(&entity.Product{ID: "p1", FarmerID: "farmer-1", ImageURL: "https://storage.googleapis.com/bucket/x.jpg"}, nil)
		storage.On("DeleteByURL", mock.Anything, "https://storage.googleapis.com/bucket/x.jpg").
			Return(nil)
		productRepo.On("Delete", mock.Anything, "p1").
			Return(nil)

		nameCache := newMemoryNameCache()
		nameCache.Set(context.Background(), "p1", "Tomatoes")

		uc := NewProductUseCase(productRepo, new(MockUserRepository), storage, nameCache)

		err := uc.DeleteProduct(context.Background(), "p1", "farmer-1")

		assert.NoError(t, err)
		_, cached := nameCache.Get(context.Background(), "p1")
		assert.False(t, cached)
		storage.AssertExpectations(t)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		productRepo := new(MockProductRepository)

		productRepo.On("GetByID", mock.Anything, "p1").
			Return(&entity.Product{ID: "p1", FarmerID: "farmer-1"}, nil)

		uc := NewProductUseCase(productRepo, new(MockUserRepository), new(MockFileStorage), newMemoryNameCache())

		err := uc.DeleteProduct(context.Background(), "p1", "farmer-2")

		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, "FORBIDDEN"))
		productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProductUseCase_BrowseProducts(t *testing.T) {
	t.Run("empty query lists the whole catalog", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("ListAll", mock.Anything).
			Return([]*entity.Product{{ID: "p1"}, {ID: "p2"}}, nil)

		uc := NewProductUseCase(productRepo, new(MockUserRepository), new(MockFileStorage), newMemoryNameCache())

		products, err := uc.BrowseProducts(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		productRepo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})

	t.Run("query narrows by name", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("SearchByName", mock.Anything, "tomato").
			Return([]*entity.Product{{ID: "p1", Name: "Tomatoes"}}, nil)

		uc := NewProductUseCase(productRepo, new(MockUserRepository), new(MockFileStorage), newMemoryNameCache())

		products, err := uc.BrowseProducts(context.Background(), "tomato")

		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})
}
