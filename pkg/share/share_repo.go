package share

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/storage"
)

type Repository interface {
	GetAll(ctx context.Context) ([]ShareLink, error)
	ReplaceAll(ctx context.Context, links []ShareLink) error
}

type RepositoryImpl struct {
	store storage.BlobStore
}

func NewRepository(store storage.BlobStore) *RepositoryImpl {
	return &RepositoryImpl{store: store}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]ShareLink, error) {
	raw, err := r.store.Load(ctx, storage.KeyShares)
	if err != nil {
		return nil, fmt.Errorf("could not load share links: %w", err)
	}
	if raw == nil {
		return []ShareLink{}, nil
	}

	var links []ShareLink
	if err := json.Unmarshal(raw, &links); err != nil {
		log.Warnf("stored share links are malformed, treating as empty: %v", err)
		return []ShareLink{}, nil
	}
	return links, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, links []ShareLink) error {
	if links == nil {
		links = []ShareLink{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("could not encode share links: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeyShares, raw); err != nil {
		return fmt.Errorf("could not save share links: %w", err)
	}
	return nil
}
