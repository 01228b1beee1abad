// Package http provides an HTTP-based implementation of
// kidzpolicy.TemplateLoader for prompt templates served alongside the
// app's static assets.
package http

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/redefinechurch/kidzpolicy"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure TemplateLoader implements kidzpolicy.TemplateLoader at compile time.
var _ kidzpolicy.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader fetches the prompt template from a URL once and caches
// it in memory for the life of the process.
type TemplateLoader struct {
	url     string
	client  *http.Client
	timeout time.Duration

	mu     sync.Mutex
	cached string
	loaded bool
}

// Option configures a TemplateLoader.
type Option func(*TemplateLoader)

// WithTimeout sets the timeout for the template request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *TemplateLoader) { l.timeout = d }
}

// NewTemplateLoader creates a loader for the template at url.
func NewTemplateLoader(url string, opts ...Option) *TemplateLoader {
	l := &TemplateLoader{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{Timeout: l.timeout}

	return l
}

// Load returns the prompt template, fetching it on first use. A failed
// fetch is not cached; the next Load retries.
func (l *TemplateLoader) Load(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", kidzpolicy.Errorf(kidzpolicy.EUNAVAILABLE, "failed to load prompt template: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", kidzpolicy.Errorf(kidzpolicy.EUNAVAILABLE, "failed to load prompt template: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	l.cached = string(body)
	l.loaded = true
	return l.cached, nil
}
