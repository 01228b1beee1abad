package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/redefinechurch/kidzpolicy"
)

// Compile-time interface verification.
var _ kidzpolicy.KVStore = (*KVService)(nil)

// KVService implements kidzpolicy.KVStore using SQLite.
type KVService struct {
	db *DB
}

// NewKVService creates a new KVService.
func NewKVService(db *DB) *KVService {
	return &KVService{db: db}
}

// Get returns the value for key in namespace ns.
func (s *KVService) Get(ctx context.Context, ns, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv WHERE ns = ? AND key = ?
	`, ns, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put stores value under key in namespace ns, replacing any existing value.
func (s *KVService) Put(ctx context.Context, ns, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (ns, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (ns, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, ns, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete removes key from namespace ns. Missing keys are not an error.
func (s *KVService) Delete(ctx context.Context, ns, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv WHERE ns = ? AND key = ?
	`, ns, key)
	return err
}

// Keys lists all keys in namespace ns.
func (s *KVService) Keys(ctx context.Context, ns string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM kv WHERE ns = ? ORDER BY key
	`, ns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
