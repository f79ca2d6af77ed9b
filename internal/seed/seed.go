// Package seed imports an initial menu into an empty catalogue.
//
// A menu is JSON Lines, one product per line, in the same shape the admin
// create endpoint accepts, except that a line without "available" seeds a
// visible product. Files whose name ends in .gz are gzip-compressed.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fastfood/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading menu files.
type Loader interface {
	// Load reads a menu file and returns its products in file order.
	Load(ctx context.Context, path string) ([]model.ProductInput, error)
}

// isGzip reports whether path names a gzip-compressed menu.
func isGzip(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// menuLine is a ProductInput whose availability defaults to true when absent.
type menuLine struct {
	model.ProductInput
	Available *bool `json:"available"`
}

// decodeMenu reads JSON Lines from r, skipping blank and malformed lines.
func decodeMenu(ctx context.Context, r io.Reader, path string, logger zerolog.Logger) ([]model.ProductInput, error) {
	if isGzip(path) {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.ProductInput
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			logger.Warn().Str("file", path).Msg("menu loading cancelled")
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry menuLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			logger.Warn().Err(err).Str("file", path).Int("line", lineNo).Msg("skipping malformed menu line")
			continue
		}
		in := entry.ProductInput
		in.ID = 0
		in.Available = entry.Available == nil || *entry.Available
		products = append(products, in)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("error reading menu file")
		return nil, fmt.Errorf("error reading menu file %s: %w", path, err)
	}

	return products, nil
}
