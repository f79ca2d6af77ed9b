package repository

import (
	"context"

	"fastfood/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// ListAvailable retrieves products with available=true ordered by category, then name.
	ListAvailable(ctx context.Context) ([]model.Product, error)

	// GetAvailableByID retrieves an available product by its ID.
	// Returns nil when the product does not exist or is unavailable.
	GetAvailableByID(ctx context.Context, id int64) (*model.Product, error)

	// ListAll retrieves every product, newest first.
	ListAll(ctx context.Context) ([]model.Product, error)

	// Exists reports whether a product row with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a product and returns its generated ID.
	Create(ctx context.Context, product *model.Product) (int64, error)

	// Update overwrites every editable column of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// CountLineItems returns how many sale line items reference the product.
	CountLineItems(ctx context.Context, id int64) (int, error)

	// Deactivate marks the product as unavailable.
	Deactivate(ctx context.Context, id int64) error

	// Delete removes the product row.
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository defines customer lookups and inserts used while placing an order.
// Both operations run inside the order transaction.
type CustomerRepository interface {
	// FindIDByPhone returns the ID of the customer with the given phone, or found=false.
	FindIDByPhone(ctx context.Context, tx pgx.Tx, phone string) (id int64, found bool, err error)

	// Create inserts a customer and returns its generated ID.
	Create(ctx context.Context, tx pgx.Tx, customer *model.Customer) (int64, error)
}

// SaleRepository defines the interface for sale data access operations.
type SaleRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateSale inserts a sale within the provided transaction and returns its ID.
	CreateSale(ctx context.Context, tx pgx.Tx, sale *model.Sale) (int64, error)

	// CreateLineItems inserts the sale's line items within the provided transaction.
	CreateLineItems(ctx context.Context, tx pgx.Tx, items []model.SaleLineItem) error

	// ListWithCustomer retrieves every sale joined with its customer, newest first.
	ListWithCustomer(ctx context.Context) ([]model.SaleSummary, error)

	// GetByID retrieves a sale with its customer and line items.
	// Returns nil when the sale does not exist.
	GetByID(ctx context.Context, id int64) (*model.SaleDetail, error)
}
