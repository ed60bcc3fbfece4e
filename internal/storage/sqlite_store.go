package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := "SELECT value FROM blobs WHERE key = ?"

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		err := fmt.Errorf("could not load blob %q: %w", key, err)
		log.Error(err)
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, datetime('now'))
				ON CONFLICT (key) DO UPDATE SET
					value = excluded.value,
					updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		err := fmt.Errorf("could not save blob %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM blobs WHERE key = ?"

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		err := fmt.Errorf("could not delete blob %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
