package service

import (
	"context"

	"fastfood/internal/model"
)

// CatalogService defines the read-only product listings.
type CatalogService interface {
	// ListAvailable retrieves products with available=true ordered by category, then name.
	ListAvailable(ctx context.Context) ([]model.Product, error)

	// GetAvailableByID retrieves a single available product, or nil.
	GetAvailableByID(ctx context.Context, id int64) (*model.Product, error)

	// ListAll retrieves every product, newest first.
	ListAll(ctx context.Context) ([]model.Product, error)
}

// AdminProductService defines catalogue maintenance.
type AdminProductService interface {
	// Create validates the input and inserts a product, returning its ID.
	Create(ctx context.Context, in *model.ProductInput) (int64, error)

	// Update validates the input and overwrites the product named by in.ID.
	Update(ctx context.Context, in *model.ProductInput) (int64, error)

	// Delete removes the product, or deactivates it when sales reference it.
	Delete(ctx context.Context, id int64) (model.DeleteOutcome, error)
}

// OrderService defines order placement.
type OrderService interface {
	// PlaceOrder validates the request and stores the customer, sale and line items
	// in one transaction, returning the new sale ID.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (int64, error)
}

// HistoryService defines the sales report.
type HistoryService interface {
	// ListSales retrieves every sale with its customer, newest first.
	ListSales(ctx context.Context) ([]model.SaleSummary, error)

	// GetSale retrieves one sale with its line items, or nil.
	GetSale(ctx context.Context, id int64) (*model.SaleDetail, error)
}
