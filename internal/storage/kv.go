package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
)

// KV is the persisted key-value collaborator the engine depends on.
// Writes are serialized per store so a delayed earlier write can never
// overwrite a later one (last-writer-wins per key).
type KV struct {
	db *sql.DB
	mu sync.Mutex
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// GetString returns the stored value and whether the key was present.
func (s *KV) GetString(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KV) SetString(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// GetInt reads an integer value. A present but unparseable value is treated
// as absent rather than surfaced as an error.
func (s *KV) GetInt(ctx context.Context, key string) (int, bool, error) {
	raw, ok, err := s.GetString(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, perr := strconv.Atoi(raw)
	if perr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (s *KV) SetInt(ctx context.Context, key string, value int) error {
	return s.SetString(ctx, key, strconv.Itoa(value))
}

func (s *KV) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	raw, ok, err := s.GetString(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	f, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return 0, false, nil
	}
	return f, true, nil
}

func (s *KV) SetFloat(ctx context.Context, key string, value float64) error {
	return s.SetString(ctx, key, strconv.FormatFloat(value, 'g', -1, 64))
}
