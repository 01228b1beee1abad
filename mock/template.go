package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.TemplateLoader = (*TemplateLoader)(nil)

// TemplateLoader is a mock implementation of kidzpolicy.TemplateLoader.
type TemplateLoader struct {
	LoadFn func(ctx context.Context) (string, error)
}

func (l *TemplateLoader) Load(ctx context.Context) (string, error) {
	return l.LoadFn(ctx)
}
