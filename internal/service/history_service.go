package service

import (
	"context"
	"fmt"

	"fastfood/internal/model"
	"fastfood/internal/repository"

	"github.com/rs/zerolog"
)

// historyService implements HistoryService.
type historyService struct {
	saleRepo repository.SaleRepository
	logger   zerolog.Logger
}

// NewHistoryService creates a new history service.
func NewHistoryService(saleRepo repository.SaleRepository, logger zerolog.Logger) HistoryService {
	return &historyService{
		saleRepo: saleRepo,
		logger:   logger.With().Str("service", "history").Logger(),
	}
}

func (s *historyService) ListSales(ctx context.Context) ([]model.SaleSummary, error) {
	sales, err := s.saleRepo.ListWithCustomer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	return sales, nil
}

func (s *historyService) GetSale(ctx context.Context, id int64) (*model.SaleDetail, error) {
	if id <= 0 {
		return nil, nil
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}
