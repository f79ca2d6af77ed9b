package seed

import (
	"context"
	"fmt"
	"os"

	"fastfood/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for menu files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a menu file from disk.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.ProductInput, error) {
	l.logger.Info().Str("file", path).Msg("loading menu file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open menu file")
		return nil, fmt.Errorf("failed to open menu file %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeMenu(ctx, file, path, l.logger)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("menu file loaded successfully")

	return products, nil
}
