// Package fs provides a filesystem implementation of
// kidzpolicy.TemplateLoader for locally installed prompt templates.
package fs

import (
	"context"
	"os"
	"sync"

	"github.com/redefinechurch/kidzpolicy"
)

// Ensure TemplateLoader implements kidzpolicy.TemplateLoader at compile time.
var _ kidzpolicy.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader reads the prompt template from a local file once and
// caches it in memory.
type TemplateLoader struct {
	path string

	mu     sync.Mutex
	cached string
	loaded bool
}

// NewTemplateLoader creates a loader for the template file at path.
func NewTemplateLoader(path string) *TemplateLoader {
	return &TemplateLoader{path: path}
}

// Load returns the prompt template, reading the file on first use.
func (l *TemplateLoader) Load(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.cached, nil
	}

	body, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return "", kidzpolicy.Errorf(kidzpolicy.ENOTFOUND, "prompt template %q not found", l.path)
	}
	if err != nil {
		return "", err
	}

	l.cached = string(body)
	l.loaded = true
	return l.cached, nil
}
