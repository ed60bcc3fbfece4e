package export_history

import (
	"context"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/utils"
)

type Service interface {
	List(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, entry Entry) (Entry, error)
	Clear(ctx context.Context) error
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: utils.SystemClock{}}
}

func NewServiceWithClock(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Entry, error) {
	return s.repo.GetAll(ctx)
}

// Append stamps the entry with an ID and timestamp, prepends it, and trims
// the collection to the MaxEntries most recent.
func (s *ServiceImpl) Append(ctx context.Context, entry Entry) (Entry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return Entry{}, err
	}

	entry.ID = uuid.NewString()
	entry.Timestamp = s.clock.Now()

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.repo.ReplaceAll(ctx, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *ServiceImpl) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
