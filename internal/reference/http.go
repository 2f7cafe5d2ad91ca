package reference

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSource downloads reference documents from fixed URLs.
type HTTPSource struct {
	Client *http.Client
	URLs   map[Document]string
}

// NewHTTPSource returns an HTTPSource whose requests give up after timeout.
func NewHTTPSource(urls map[Document]string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		Client: &http.Client{Timeout: timeout},
		URLs:   urls,
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, doc Document) ([]byte, error) {
	url, ok := s.URLs[doc]
	if !ok || url == "" {
		return nil, fmt.Errorf("http source %s: %w", doc, ErrDocumentUnconfigured)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http source %s: build request: %w", doc, err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http source %s: %w", doc, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("http source %s: %w", doc, ErrDocumentNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http source %s: unexpected status %d", doc, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("http source %s: read body: %w", doc, err)
	}
	return data, nil
}
