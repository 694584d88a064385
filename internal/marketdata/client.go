package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pawansinha0612/indian-stock-api/config"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
)

// Client defines the contract for reading index data from the upstream
// market-data API.
type Client interface {
	// IndexSnapshot fetches the current envelope for one index.
	IndexSnapshot(ctx context.Context, index models.Index) (*models.IndexEnvelope, error)
	// Ping reports whether the upstream API is reachable.
	Ping(ctx context.Context) error
	// Close releases idle connections held by the client.
	Close()
}

// StatusError reports a non-2xx response from the upstream API.
// The numeric code is preserved so callers can surface it verbatim.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.Code, e.URL)
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a Client that talks to the configured upstream API
// with a per-request timeout.
func NewHTTPClient(cfg config.UpstreamConfig) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// IndexSnapshot performs a single GET against the index data path.
// One request per call: no retries, no partial results.
func (c *httpClient) IndexSnapshot(ctx context.Context, index models.Index) (*models.IndexEnvelope, error) {
	url := c.baseURL + index.DataPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	var envelope models.IndexEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding envelope from %s: %w", url, err)
	}

	return &envelope, nil
}

// Ping issues a GET against the upstream root. Transport failures and
// 5xx responses count as down; anything else means reachable.
func (c *httpClient) Ping(ctx context.Context) error {
	url := c.baseURL + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Code: resp.StatusCode, URL: url}
	}
	return nil
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}
