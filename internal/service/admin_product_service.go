package service

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/model"
	"fastfood/internal/repository"
	"fastfood/internal/validation"

	"github.com/rs/zerolog"
)

// adminProductService implements AdminProductService.
type adminProductService struct {
	productRepo repository.ProductRepository
	validator   *validation.Validator
	logger      zerolog.Logger
}

// NewAdminProductService creates a new admin product service.
func NewAdminProductService(
	productRepo repository.ProductRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) AdminProductService {
	return &adminProductService{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger.With().Str("service", "admin_product").Logger(),
	}
}

// Create validates the input and inserts a product, returning its ID.
func (s *adminProductService) Create(ctx context.Context, in *model.ProductInput) (int64, error) {
	if err := s.validator.ValidateProduct(in); err != nil {
		s.logger.Warn().Err(err).Msg("product rejected by validation")
		return 0, err
	}

	id, err := s.productRepo.Create(ctx, in.ToProduct())
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Str("name", in.Name).Msg("product created")

	return id, nil
}

// Update validates the input and overwrites the product named by in.ID.
func (s *adminProductService) Update(ctx context.Context, in *model.ProductInput) (int64, error) {
	if in == nil || in.ID <= 0 {
		return 0, model.ErrProductIDRequiredUpdate
	}

	if err := s.validator.ValidateProduct(in); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", in.ID).Msg("product update rejected by validation")
		return 0, err
	}

	exists, err := s.productRepo.Exists(ctx, in.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update product: %w", err)
	}
	if !exists {
		s.logger.Debug().Int64("product_id", in.ID).Msg("product not found")
		return 0, model.ErrProductNotFound
	}

	if err := s.productRepo.Update(ctx, in.ToProduct()); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int64("product_id", in.ID).Msg("product updated")

	return in.ID, nil
}

// Delete removes the product, or deactivates it when sales reference it.
func (s *adminProductService) Delete(ctx context.Context, id int64) (model.DeleteOutcome, error) {
	if id <= 0 {
		return "", model.ErrProductIDRequired
	}

	exists, err := s.productRepo.Exists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to delete product: %w", err)
	}
	if !exists {
		return "", model.ErrProductNotFound
	}

	count, err := s.productRepo.CountLineItems(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to delete product: %w", err)
	}

	if count > 0 {
		if err := s.productRepo.Deactivate(ctx, id); err != nil {
			return "", fmt.Errorf("failed to deactivate product: %w", err)
		}
		s.logger.Info().
			Int64("product_id", id).
			Int("line_items", count).
			Msg("product deactivated")
		return model.DeleteOutcomeDeactivated, nil
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return model.DeleteOutcomeRemoved, nil
}
