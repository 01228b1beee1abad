package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.RemoteAsker = (*RemoteAsker)(nil)

// RemoteAsker is a mock implementation of kidzpolicy.RemoteAsker.
type RemoteAsker struct {
	GenerateFn func(ctx context.Context, prompt string) (*kidzpolicy.RemoteAnswer, error)
}

func (a *RemoteAsker) Generate(ctx context.Context, prompt string) (*kidzpolicy.RemoteAnswer, error) {
	return a.GenerateFn(ctx, prompt)
}
