package repository

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id_producto, nombre, descripcion, precio, categoria, imagen, disponible, fecha_creacion`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListAvailable retrieves products with available=true ordered by category, then name.
func (r *productRepository) ListAvailable(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE disponible = TRUE
		ORDER BY categoria, nombre
	`

	return r.list(ctx, query, "available")
}

// ListAll retrieves every product, newest first.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos
		ORDER BY fecha_creacion DESC, id_producto DESC
	`

	return r.list(ctx, query, "all")
}

func (r *productRepository) list(ctx context.Context, query, view string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Str("view", view).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetAvailableByID retrieves an available product by its ID.
func (r *productRepository) GetAvailableByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE id_producto = $1 AND disponible = TRUE
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Exists reports whether a product row with the given ID exists.
func (r *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM productos WHERE id_producto = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to check product existence")
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}

	return exists, nil
}

// Create inserts a product and returns its generated ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (int64, error) {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, categoria, imagen, disponible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_producto
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Image,
		product.Available,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product created successfully")

	return id, nil
}

// Update overwrites every editable column of an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE productos
		SET nombre = $1, descripcion = $2, precio = $3, categoria = $4, imagen = $5, disponible = $6
		WHERE id_producto = $7
	`

	tag, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Image,
		product.Available,
		product.ID,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.logger.Debug().Int64("product_id", product.ID).Msg("product updated successfully")

	return nil
}

// CountLineItems returns how many sale line items reference the product.
func (r *productRepository) CountLineItems(ctx context.Context, id int64) (int, error) {
	query := `SELECT COUNT(*) FROM detalle_ventas WHERE id_producto = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to count line items")
		return 0, fmt.Errorf("failed to count line items: %w", err)
	}

	return count, nil
}

// Deactivate marks the product as unavailable.
func (r *productRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE productos SET disponible = FALSE WHERE id_producto = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to deactivate product")
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	return nil
}

// Delete removes the product row.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM productos WHERE id_producto = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// scanProduct reads one product from a row positioned on productColumns.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Image,
		&p.Available,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
