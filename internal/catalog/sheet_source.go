package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// sheetSource reads the public product sheet exported as a JSON array.
type sheetSource struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewSheetSource creates a Source backed by the read-only product sheet.
func NewSheetSource(url string, timeout time.Duration, logger zerolog.Logger) Source {
	return &sheetSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "sheet-source").Logger(),
	}
}

// Fetch downloads and decodes the sheet.
func (s *sheetSource) Fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("failed to fetch catalog")
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error().Int("status", resp.StatusCode).Str("url", s.url).Msg("catalog source returned error status")
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		s.logger.Error().Err(err).Msg("failed to decode catalog")
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	s.logger.Debug().Int("products", len(products)).Msg("catalog fetched")

	return products, nil
}
