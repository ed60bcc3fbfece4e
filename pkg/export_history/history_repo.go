package export_history

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/storage"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Entry, error)
	ReplaceAll(ctx context.Context, entries []Entry) error
	DeleteAll(ctx context.Context) error
}

type RepositoryImpl struct {
	store storage.BlobStore
}

func NewRepository(store storage.BlobStore) *RepositoryImpl {
	return &RepositoryImpl{store: store}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Entry, error) {
	raw, err := r.store.Load(ctx, storage.KeyExportHistory)
	if err != nil {
		return nil, fmt.Errorf("could not load export history: %w", err)
	}
	if raw == nil {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warnf("stored export history is malformed, treating as empty: %v", err)
		return []Entry{}, nil
	}
	return entries, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not encode export history: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeyExportHistory, raw); err != nil {
		return fmt.Errorf("could not save export history: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyExportHistory)
}
