package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/harshverma27/Kissan-Connect/internal/domain/entity"
)

func TestEarningsUseCase_TrackEarnings(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockOrderRepository, *MockProductRepository)
		expectedTotal  float64
		expectedOrders int
		expectedErr    bool
	}{
		{
			name: "no accepted orders totals zero without fetching products",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return([]*entity.Order{}, nil)
			},
			expectedTotal:  0,
			expectedOrders: 0,
		},
		{
			name: "repeat orders for the same product each count",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return([]*entity.Order{
						{ID: "o1", ProductID: "p1", Status: entity.OrderStatusAccepted},
						{ID: "o2", ProductID: "p1", Status: entity.OrderStatusAccepted},
						{ID: "o3", ProductID: "p1", Status: entity.OrderStatusAccepted},
						{ID: "o4", ProductID: "p2", Status: entity.OrderStatusAccepted},
					}, nil)
				products.On("GetByIDs", mock.Anything, []string{"p1", "p2"}).
					Return([]*entity.Product{
						{ID: "p1", Name: "Tomatoes", Price: "120.50"},
						{ID: "p2", Name: "Onions", Price: "75"},
					}, nil)
			},
			expectedTotal:  436.50,
			expectedOrders: 4,
		},
		{
			name: "unparseable price contributes zero",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return([]*entity.Order{
						{ID: "o1", ProductID: "p1", Status: entity.OrderStatusAccepted},
						{ID: "o2", ProductID: "p2", Status: entity.OrderStatusAccepted},
					}, nil)
				products.On("GetByIDs", mock.Anything, []string{"p1", "p2"}).
					Return([]*entity.Product{
						{ID: "p1", Name: "Potatoes", Price: "50"},
						{ID: "p2", Name: "Wheat", Price: "per kg"},
					}, nil)
			},
			expectedTotal:  50,
			expectedOrders: 2,
		},
		{
			name: "order referencing a deleted product contributes zero",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return([]*entity.Order{
						{ID: "o1", ProductID: "p1", Status: entity.OrderStatusAccepted},
						{ID: "o2", ProductID: "gone", Status: entity.OrderStatusAccepted},
					}, nil)
				products.On("GetByIDs", mock.Anything, []string{"p1", "gone"}).
					Return([]*entity.Product{
						{ID: "p1", Name: "Potatoes", Price: "50"},
					}, nil)
			},
			expectedTotal:  50,
			expectedOrders: 2,
		},
		{
			name: "order query failure aborts the computation",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return(nil, errors.New("firestore unavailable"))
			},
			expectedErr: true,
		},
		{
			name: "product query failure aborts the computation",
			setupMocks: func(orders *MockOrderRepository, products *MockProductRepository) {
				orders.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
					Return([]*entity.Order{
						{ID: "o1", ProductID: "p1", Status: entity.OrderStatusAccepted},
					}, nil)
				products.On("GetByIDs", mock.Anything, []string{"p1"}).
					Return(nil, errors.New("firestore unavailable"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(MockOrderRepository)
			productRepo := new(MockProductRepository)
			tt.setupMocks(orderRepo, productRepo)

			uc := NewEarningsUseCase(orderRepo, productRepo)

			summary, err := uc.TrackEarnings(context.Background(), "farmer-1")

			if tt.expectedErr {
				assert.Error(t, err)
				assert.Nil(t, summary)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "farmer-1", summary.FarmerID)
			assert.Equal(t, tt.expectedTotal, summary.Total)
			assert.Equal(t, tt.expectedOrders, summary.AcceptedOrders)

			orderRepo.AssertExpectations(t)
			productRepo.AssertExpectations(t)
		})
	}
}

func TestEarningsUseCase_TrackEarnings_NoProductFetchWhenEmpty(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)

	orderRepo.On("ListAcceptedByFarmerID", mock.Anything, "farmer-1").
		Return([]*entity.Order{}, nil)

	uc := NewEarningsUseCase(orderRepo, productRepo)

	summary, err := uc.TrackEarnings(context.Background(), "farmer-1")

	assert.NoError(t, err)
	assert.Equal(t, float64(0), summary.Total)
	productRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestDistinctProductIDs(t *testing.T) {
	orders := []*entity.Order{
		{ID: "o1", ProductID: "p1"},
		{ID: "o2", ProductID: "p2"},
		{ID: "o3", ProductID: "p1"},
		{ID: "o4", ProductID: ""},
	}

	assert.Equal(t, []string{"p1", "p2"}, distinctProductIDs(orders))
}
