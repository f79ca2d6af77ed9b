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

const saleSummaryQuery = `
	SELECT v.id_venta, v.id_cliente, v.total, v.metodo_pago, v.estado, v.fecha_venta,
	       c.nombre, c.telefono
	FROM ventas v
	JOIN clientes c ON c.id_cliente = v.id_cliente
`

// saleRepository implements the SaleRepository interface using PostgreSQL.
type saleRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSaleRepository creates a new PostgreSQL-backed sale repository.
func NewSaleRepository(pool *pgxpool.Pool, logger zerolog.Logger) SaleRepository {
	return &saleRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "sale").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *saleRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateSale inserts a sale within the provided transaction and returns its ID.
func (r *saleRepository) CreateSale(ctx context.Context, tx pgx.Tx, sale *model.Sale) (int64, error) {
	query := `
		INSERT INTO ventas (id_cliente, total, metodo_pago, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id_venta
	`

	status := sale.Status
	if status == "" {
		status = model.SaleStatusPending
	}

	var id int64
	err := tx.QueryRow(ctx, query, sale.CustomerID, sale.Total, sale.PaymentMethod, status).Scan(&id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("customer_id", sale.CustomerID).
			Msg("failed to create sale")
		return 0, fmt.Errorf("failed to create sale: %w", err)
	}

	r.logger.Debug().Int64("sale_id", id).Msg("sale created successfully")

	return id, nil
}

// CreateLineItems inserts the sale's line items within the provided transaction.
func (r *saleRepository) CreateLineItems(ctx context.Context, tx pgx.Tx, items []model.SaleLineItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO detalle_ventas (id_venta, id_producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("sale_id", items[i].SaleID).
				Int64("product_id", items[i].ProductID).
				Msg("failed to create sale line item")
			return fmt.Errorf("failed to create sale line item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("sale line items created successfully")

	return nil
}

// ListWithCustomer retrieves every sale joined with its customer, newest first.
func (r *saleRepository) ListWithCustomer(ctx context.Context) ([]model.SaleSummary, error) {
	query := saleSummaryQuery + `ORDER BY v.fecha_venta DESC, v.id_venta DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query sales")
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []model.SaleSummary{}
	for rows.Next() {
		s, err := scanSaleSummary(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan sale row")
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, *s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating sale rows")
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// GetByID retrieves a sale with its customer and line items.
func (r *saleRepository) GetByID(ctx context.Context, id int64) (*model.SaleDetail, error) {
	summary, err := scanSaleSummary(r.pool.QueryRow(ctx, saleSummaryQuery+`WHERE v.id_venta = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("sale_id", id).Msg("sale not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to query sale")
		return nil, fmt.Errorf("failed to query sale: %w", err)
	}

	itemsQuery := `
		SELECT d.id_detalle, d.id_venta, d.id_producto, p.nombre,
		       d.cantidad, d.precio_unitario, d.subtotal
		FROM detalle_ventas d
		LEFT JOIN productos p ON p.id_producto = d.id_producto
		WHERE d.id_venta = $1
		ORDER BY d.id_detalle
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("sale_id", id).Msg("failed to query sale line items")
		return nil, fmt.Errorf("failed to query sale line items: %w", err)
	}
	defer rows.Close()

	items := []model.SaleLineItem{}
	for rows.Next() {
		var item model.SaleLineItem
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan sale line item row")
			return nil, fmt.Errorf("failed to scan sale line item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating sale line item rows")
		return nil, fmt.Errorf("error iterating sale line items: %w", err)
	}

	return &model.SaleDetail{SaleSummary: *summary, Items: items}, nil
}

func scanSaleSummary(row pgx.Row) (*model.SaleSummary, error) {
	var s model.SaleSummary
	err := row.Scan(
		&s.ID,
		&s.CustomerID,
		&s.Total,
		&s.PaymentMethod,
		&s.Status,
		&s.CreatedAt,
		&s.CustomerName,
		&s.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
