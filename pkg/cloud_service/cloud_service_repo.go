package cloud_service

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/storage"
)

// Repository persists the connection toggles as a service-id → connected map.
type Repository interface {
	GetConnections(ctx context.Context) (map[string]bool, error)
	ReplaceConnections(ctx context.Context, connections map[string]bool) error
}

type RepositoryImpl struct {
	store storage.BlobStore
}

func NewRepository(store storage.BlobStore) *RepositoryImpl {
	return &RepositoryImpl{store: store}
}

func (r *RepositoryImpl) GetConnections(ctx context.Context) (map[string]bool, error) {
	raw, err := r.store.Load(ctx, storage.KeyCloudServices)
	if err != nil {
		return nil, fmt.Errorf("could not load service connections: %w", err)
	}
	if raw == nil {
		return map[string]bool{}, nil
	}

	var connections map[string]bool
	if err := json.Unmarshal(raw, &connections); err != nil {
		log.Warnf("stored service connections are malformed, treating as empty: %v", err)
		return map[string]bool{}, nil
	}
	return connections, nil
}

func (r *RepositoryImpl) ReplaceConnections(ctx context.Context, connections map[string]bool) error {
	if connections == nil {
		connections = map[string]bool{}
	}
	raw, err := json.Marshal(connections)
	if err != nil {
		return fmt.Errorf("could not encode service connections: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeyCloudServices, raw); err != nil {
		return fmt.Errorf("could not save service connections: %w", err)
	}
	return nil
}
