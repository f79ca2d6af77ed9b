package service

import (
	"context"
	"fmt"

	"fastfood/internal/model"
	"fastfood/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// ListAvailable retrieves products with available=true ordered by category, then name.
func (s *catalogService) ListAvailable(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list available products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved available products")

	return products, nil
}

// GetAvailableByID retrieves a single available product, or nil.
func (s *catalogService) GetAvailableByID(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, nil
	}

	product, err := s.productRepo.GetAvailableByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListAll retrieves every product, newest first.
func (s *catalogService) ListAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved all products")

	return products, nil
}
