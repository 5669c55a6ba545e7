package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Product, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, query string) ([]*entity.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByConsumerID(ctx context.Context, consumerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, consumerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAcceptedByFarmerID(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) Listen(ctx context.Context, role, userID string) (<-chan []*entity.Order, error) {
	args := m.Called(ctx, role, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []*entity.Order), args.Error(1)
}

// MockFirebaseAuthClient is a mock implementation of FirebaseAuthClient.
type MockFirebaseAuthClient struct {
	mock.Mock
}

func (m *MockFirebaseAuthClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockFirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockFirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockFirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

// MockFileStorage is a mock implementation of FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) UploadProductImage(ctx context.Context, farmerID string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, farmerID, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteByURL(ctx context.Context, fileURL string) error {
	args := m.Called(ctx, fileURL)
	return args.Error(0)
}

// memoryNameCache is an in-memory ProductNameCache for tests.
type memoryNameCache struct {
	mu    sync.Mutex
	names map[string]string
}

func newMemoryNameCache() *memoryNameCache {
	return &memoryNameCache{names: make(map[string]string)}
}

func (c *memoryNameCache) Get(ctx context.Context, productID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.names[productID]
	return name, ok
}

func (c *memoryNameCache) Set(ctx context.Context, productID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[productID] = name
}

func (c *memoryNameCache) Invalidate(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.names, productID)
}
