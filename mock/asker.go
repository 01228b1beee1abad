package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.Asker = (*Asker)(nil)

// Asker is a mock implementation of kidzpolicy.Asker.
type Asker struct {
	AskFn func(ctx context.Context, userID, query string) (*kidzpolicy.ResponseEnvelope, error)
}

func (a *Asker) Ask(ctx context.Context, userID, query string) (*kidzpolicy.ResponseEnvelope, error) {
	return a.AskFn(ctx, userID, query)
}
