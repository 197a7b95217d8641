package variants

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"lettrix/internal/domain"
)

// HTTPSource implements ports.VariantSource against a configuration endpoint
// serving <endpoint>/<category>/<section>.txts. Fetched pools are cached
// because the backing resources are immutable for the lifetime of a deployment.
type HTTPSource struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
	cache      map[string][]string
	mu         sync.RWMutex
}

// NewHTTPSource creates a new HTTP variant source.
func NewHTTPSource(endpoint string, logger *slog.Logger) *HTTPSource {
	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		endpoint: endpoint,
		logger:   logger,
		cache:    make(map[string][]string),
	}
}

// Load returns the variants for one section. A 404 yields an empty pool.
func (s *HTTPSource) Load(ctx context.Context, category string, section domain.Section) ([]string, error) {
	path := PoolPath(category, string(section))

	s.mu.RLock()
	if cached, ok := s.cache[path]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	pool, err := s.fetch(ctx, path)
	if err != nil {
		return nil, &domain.SourceError{Category: category, Section: section, Err: err}
	}

	s.mu.Lock()
	s.cache[path] = pool
	s.mu.Unlock()

	s.logger.Debug("loaded variant pool", "path", path, "variants", len(pool))
	return pool, nil
}

func (s *HTTPSource) fetch(ctx context.Context, path string) ([]string, error) {
	u, err := url.JoinPath(s.endpoint, path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pool: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("pool %s: unexpected status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	return ParsePool(string(data)), nil
}
