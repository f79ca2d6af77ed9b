package seed

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/model"
	"fastfood/internal/service"

	"github.com/rs/zerolog"
)

// Result summarises one seeding run.
type Result struct {
	Created int
	Skipped int
	// AlreadySeeded is set when the catalogue had products and nothing was loaded.
	AlreadySeeded bool
}

// Seeder fills an empty catalogue from a menu file.
type Seeder struct {
	loader  Loader
	catalog service.CatalogService
	admin   service.AdminProductService
	logger  zerolog.Logger
}

// NewSeeder creates a seeder. Products are created through admin so they pass
// the same validation as the admin panel.
func NewSeeder(loader Loader, catalog service.CatalogService, admin service.AdminProductService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader:  loader,
		catalog: catalog,
		admin:   admin,
		logger:  logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed loads path and creates its products, unless the catalogue already has any.
// Products that fail validation are logged and skipped.
func (s *Seeder) Seed(ctx context.Context, path string) (Result, error) {
	existing, err := s.catalog.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to inspect catalogue: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info().Int("products", len(existing)).Msg("catalogue already populated, skipping seed")
		return Result{AlreadySeeded: true}, nil
	}

	products, err := s.loader.Load(ctx, path)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i := range products {
		in := products[i]
		id, err := s.admin.Create(ctx, &in)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				s.logger.Warn().
					Str("name", in.Name).
					Strs("errors", verr.Messages).
					Msg("skipping invalid menu product")
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("failed to seed product %q: %w", in.Name, err)
		}

		s.logger.Debug().Int64("product_id", id).Str("name", in.Name).Msg("seeded product")
		res.Created++
	}

	s.logger.Info().
		Str("file", path).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("catalogue seeded")

	return res, nil
}
