package expense

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/storage"
)

// Repository round-trips the full expense collection as one stored blob.
// There is no per-record addressing in storage.
type Repository interface {
	GetAll(ctx context.Context) ([]Expense, error)
	ReplaceAll(ctx context.Context, expenses []Expense) error
}

type RepositoryImpl struct {
	store storage.BlobStore
}

func NewRepository(store storage.BlobStore) *RepositoryImpl {
	return &RepositoryImpl{store: store}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Expense, error) {
	raw, err := r.store.Load(ctx, storage.KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("could not load expenses: %w", err)
	}
	if raw == nil {
		return []Expense{}, nil
	}

	var expenses []Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		// Corrupted data is treated as absent, never surfaced.
		log.Warnf("stored expense data is malformed, treating as empty: %v", err)
		return []Expense{}, nil
	}
	return expenses, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, expenses []Expense) error {
	if expenses == nil {
		expenses = []Expense{}
	}
	raw, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("could not encode expenses: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeyExpenses, raw); err != nil {
		return fmt.Errorf("could not save expenses: %w", err)
	}
	return nil
}
