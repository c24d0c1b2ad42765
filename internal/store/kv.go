package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KV is a string key/value table. It satisfies progress.Storage.
type KV struct {
	db *sql.DB
}

const kvTimeout = 5 * time.Second

// Get returns the value for key; ok is false when the key is absent.
func (k *KV) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()

	var v string
	err := k.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

// Set upserts key.
func (k *KV) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()

	_, err := k.db.ExecContext(ctx, `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (k *KV) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), kvTimeout)
	defer cancel()

	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
