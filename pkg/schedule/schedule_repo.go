package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/storage"
)

type Repository interface {
	// Get returns nil when no schedule has been configured.
	Get(ctx context.Context) (*Config, error)
	Replace(ctx context.Context, cfg Config) error
	Delete(ctx context.Context) error
}

type RepositoryImpl struct {
	store storage.BlobStore
}

func NewRepository(store storage.BlobStore) *RepositoryImpl {
	return &RepositoryImpl{store: store}
}

func (r *RepositoryImpl) Get(ctx context.Context) (*Config, error) {
	raw, err := r.store.Load(ctx, storage.KeySchedule)
	if err != nil {
		return nil, fmt.Errorf("could not load schedule: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Warnf("stored schedule is malformed, treating as unset: %v", err)
		return nil, nil
	}
	return &cfg, nil
}

func (r *RepositoryImpl) Replace(ctx context.Context, cfg Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not encode schedule: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeySchedule, raw); err != nil {
		return fmt.Errorf("could not save schedule: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeySchedule)
}
