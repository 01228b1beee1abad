package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.KVStore = (*KVStore)(nil)

// KVStore is a mock implementation of kidzpolicy.KVStore.
type KVStore struct {
	GetFn    func(ctx context.Context, ns, key string) (string, bool, error)
	PutFn    func(ctx context.Context, ns, key, value string) error
	DeleteFn func(ctx context.Context, ns, key string) error
	KeysFn   func(ctx context.Context, ns string) ([]string, error)
}

func (s *KVStore) Get(ctx context.Context, ns, key string) (string, bool, error) {
	return s.GetFn(ctx, ns, key)
}

func (s *KVStore) Put(ctx context.Context, ns, key, value string) error {
	return s.PutFn(ctx, ns, key, value)
}

func (s *KVStore) Delete(ctx context.Context, ns, key string) error {
	return s.DeleteFn(ctx, ns, key)
}

func (s *KVStore) Keys(ctx context.Context, ns string) ([]string, error) {
	return s.KeysFn(ctx, ns)
}
