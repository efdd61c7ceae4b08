package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSnapshot writes products as a gzipped JSON snapshot and returns its path.
func writeSnapshot(t *testing.T, products []model.Product) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	require.NoError(t, json.NewEncoder(gz).Encode(products))
	require.NoError(t, gz.Close())

	return path
}

// mockLoader is a mock implementation of the SnapshotLoader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]model.Product, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func TestFileSnapshotLoader_Load(t *testing.T) {
	path := writeSnapshot(t, []model.Product{
		{Title: "Watch A", ItemGroupID: "G1"},
		{Title: "Watch B", ItemGroupID: "G1"},
	})

	loader := NewFileSnapshotLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Watch A", "Watch B"}, titles(products))
}

func TestFileSnapshotLoader_MissingFile(t *testing.T) {
	loader := NewFileSnapshotLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json.gz"))
	assert.Error(t, err)
}

func TestFileSnapshotLoader_NotGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	loader := NewFileSnapshotLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), path)
	assert.Error(t, err)
}

func TestFileSnapshotLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewFileSnapshotLoader(zerolog.Nop())

	_, err := loader.Load(ctx, "unused")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackSnapshotLoader_S3Success(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			assert.Equal(t, "catalog/snapshot.json.gz", path, "S3 key should have prefix")
			return []model.Product{{Title: "From S3"}}, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	loader := NewFallbackSnapshotLoader(s3Loader, fileLoader, "catalog/", zerolog.Nop())

	products, err := loader.Load(context.Background(), "snapshot.json.gz")
	require.NoError(t, err)
	assert.Equal(t, []string{"From S3"}, titles(products))
}

func TestFallbackSnapshotLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			return nil, errors.New("access denied")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.Product, error) {
			assert.Equal(t, "snapshot.json.gz", path, "local path should not have prefix")
			return []model.Product{{Title: "From disk"}}, nil
		},
	}

	loader := NewFallbackSnapshotLoader(s3Loader, fileLoader, "catalog/", zerolog.Nop())

	products, err := loader.Load(context.Background(), "snapshot.json.gz")
	require.NoError(t, err)
	assert.Equal(t, []string{"From disk"}, titles(products))
}

func TestFallbackSnapshotLoader_LocalOnly(t *testing.T) {
	path := writeSnapshot(t, []model.Product{{Title: "Local"}})

	loader := NewFallbackSnapshotLoader(nil, NewFileSnapshotLoader(zerolog.Nop()), "catalog/", zerolog.Nop())

	products, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Local"}, titles(products))
}
