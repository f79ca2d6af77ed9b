package repository

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
// Every query runs on the transaction handed in by the caller.
func NewCustomerRepository(logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// FindIDByPhone returns the ID of the customer with the given phone, or found=false.
func (r *customerRepository) FindIDByPhone(ctx context.Context, tx pgx.Tx, phone string) (int64, bool, error) {
	query := `SELECT id_cliente FROM clientes WHERE telefono = $1`

	var id int64
	if err := tx.QueryRow(ctx, query, phone).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		r.logger.Error().Err(err).Msg("failed to look up customer by phone")
		return 0, false, fmt.Errorf("failed to query customer: %w", err)
	}

	return id, true, nil
}

// Create inserts a customer and returns its generated ID.
func (r *customerRepository) Create(ctx context.Context, tx pgx.Tx, customer *model.Customer) (int64, error) {
	query := `
		INSERT INTO clientes (nombre, telefono, email, direccion)
		VALUES ($1, $2, $3, $4)
		RETURNING id_cliente
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Msg("customer phone registered by a concurrent order")
		}
		r.logger.Error().Err(err).Msg("failed to create customer")
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Int64("customer_id", id).Msg("customer created successfully")

	return id, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
