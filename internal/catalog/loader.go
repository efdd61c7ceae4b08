package catalog

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// fileSnapshotLoader implements SnapshotLoader for gzipped snapshots on disk.
type fileSnapshotLoader struct {
	logger zerolog.Logger
}

// NewFileSnapshotLoader creates a new file-based snapshot loader.
func NewFileSnapshotLoader(logger zerolog.Logger) SnapshotLoader {
	return &fileSnapshotLoader{
		logger: logger.With().Str("component", "snapshot-loader").Logger(),
	}
}

// Load reads a gzipped JSON snapshot from the local file system.
func (l *fileSnapshotLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading catalog snapshot")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog snapshot")
		return nil, fmt.Errorf("failed to open catalog snapshot %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeSnapshot(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog snapshot")
		return nil, fmt.Errorf("failed to read catalog snapshot %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalog snapshot loaded successfully")

	return products, nil
}
