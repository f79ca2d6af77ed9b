package handler

import (
	"context"

	"fastfood/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAvailable(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) GetAvailableByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockAdminProductService is a mock implementation of AdminProductService.
type MockAdminProductService struct {
	mock.Mock
}

func (m *MockAdminProductService) Create(ctx context.Context, in *model.ProductInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminProductService) Update(ctx context.Context, in *model.ProductInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminProductService) Delete(ctx context.Context, id int64) (model.DeleteOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteOutcome), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryService is a mock implementation of HistoryService.
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) ListSales(ctx context.Context) ([]model.SaleSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SaleSummary), args.Error(1)
}

func (m *MockHistoryService) GetSale(ctx context.Context, id int64) (*model.SaleDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SaleDetail), args.Error(1)
}
