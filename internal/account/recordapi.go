package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// RecordAPIConfig locates a table in the remote record API.
type RecordAPIConfig struct {
	URL     string
	Base    string
	Table   string
	Token   string
	Timeout time.Duration
}

// RecordAPIClient is a Store backed by a hosted record API authenticated
// with a static bearer token.
type RecordAPIClient struct {
	endpoint string
	token    string
	client   *http.Client
	logger   zerolog.Logger
}

// NewRecordAPIClient creates a record API client.
func NewRecordAPIClient(cfg RecordAPIConfig, logger zerolog.Logger) *RecordAPIClient {
	return &RecordAPIClient{
		endpoint: fmt.Sprintf("%s/%s/%s", cfg.URL, url.PathEscape(cfg.Base), url.PathEscape(cfg.Table)),
		token:    cfg.Token,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger.With().Str("component", "record_api").Logger(),
	}
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

type createRequest struct {
	Fields Fields `json:"fields"`
}

type updateRequest struct {
	Records []Record `json:"records"`
}

// Query lists matching records, following pagination offsets.
func (c *RecordAPIClient) Query(ctx context.Context, filter Filter) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		params := url.Values{}
		if len(filter) > 0 {
			params.Set("filterByFormula", filter.Formula())
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("failed to query records: %w", err)
		}

		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Create inserts a record.
func (c *RecordAPIClient) Create(ctx context.Context, fields Fields) (Record, error) {
	var created Record
	if err := c.do(ctx, http.MethodPost, c.endpoint, createRequest{Fields: fields}, &created); err != nil {
		return Record{}, fmt.Errorf("failed to create record: %w", err)
	}

	c.logger.Debug().Str("record_id", created.ID).Msg("record created")
	return created, nil
}

// Update patches the given fields of one record.
func (c *RecordAPIClient) Update(ctx context.Context, id string, fields Fields) error {
	body := updateRequest{Records: []Record{{ID: id, Fields: fields}}}
	if err := c.do(ctx, http.MethodPatch, c.endpoint, body, nil); err != nil {
		return fmt.Errorf("failed to update record %s: %w", id, err)
	}
	return nil
}

func (c *RecordAPIClient) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Str("method", method).
			Int("status", resp.StatusCode).
			Msg("record API request failed")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
