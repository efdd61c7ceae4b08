package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"storefront/internal/model"
)

// Source fetches the live product list.
type Source interface {
	// Fetch returns the full, ordered catalog.
	Fetch(ctx context.Context) ([]model.Product, error)
}

// SnapshotLoader reads a previously exported catalog snapshot.
type SnapshotLoader interface {
	// Load reads a gzipped JSON snapshot and returns its products.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// decodeSnapshot reads a gzipped JSON array of products.
func decodeSnapshot(r io.Reader) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	var products []model.Product
	if err := json.NewDecoder(gzipReader).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return products, nil
}
