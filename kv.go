package kidzpolicy

import "context"

// KVStore is a durable, namespaced, string-valued key-value store. Values
// are JSON-serialized by callers. Used for rate-limiter state and user
// preferences; not a general persistence layer.
type KVStore interface {
	// Get returns the value for key in namespace ns. The boolean reports
	// whether the key exists.
	Get(ctx context.Context, ns, key string) (string, bool, error)

	// Put stores value under key in namespace ns, replacing any existing
	// value.
	Put(ctx context.Context, ns, key, value string) error

	// Delete removes key from namespace ns. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, ns, key string) error

	// Keys lists all keys in namespace ns.
	Keys(ctx context.Context, ns string) ([]string, error)
}
