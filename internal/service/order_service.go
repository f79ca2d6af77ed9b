package service

import (
	"context"
	"fmt"

	"fastfood/internal/model"
	"fastfood/internal/repository"
	"fastfood/internal/validation"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	validator    *validation.Validator
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		validator:    validator,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates the request and stores the customer, sale and line items
// in one transaction, returning the new sale ID.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (saleID int64, err error) {
	if err := s.validator.ValidateOrder(req); err != nil {
		s.logger.Warn().Err(err).Msg("order rejected by validation")
		return 0, err
	}

	tx, err := s.saleRepo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	customerID, found, err := s.customerRepo.FindIDByPhone(ctx, tx, req.Customer.Phone)
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	if !found {
		customerID, err = s.customerRepo.Create(ctx, tx, &model.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to place order: %w", err)
		}
	}

	saleID, err = s.saleRepo.CreateSale(ctx, tx, &model.Sale{
		CustomerID:    customerID,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Status:        model.SaleStatusPending,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	items := make([]model.SaleLineItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = model.SaleLineItem{
			SaleID:    saleID,
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Subtotal:  p.Subtotal(),
		}
	}

	if err = s.saleRepo.CreateLineItems(ctx, tx, items); err != nil {
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("sale_id", saleID).Msg("failed to commit transaction")
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Int64("sale_id", saleID).
		Int64("customer_id", customerID).
		Bool("new_customer", !found).
		Int("item_count", len(items)).
		Str("total", req.Total.String()).
		Msg("order placed")

	return saleID, nil
}
