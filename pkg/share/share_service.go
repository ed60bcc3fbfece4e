package share

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/utils"
)

const urlPrefix = "https://expenses.app/shared/"

type Service interface {
	List(ctx context.Context) ([]ShareLink, error)
	Create(ctx context.Context) (ShareLink, error)
	Revoke(ctx context.Context, id string) error
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

func (s *ServiceImpl) List(ctx context.Context) ([]ShareLink, error) {
	return s.repo.GetAll(ctx)
}

// Create mints a link expiring exactly Expiry after creation and prepends it,
// trimming the collection to the MaxLinks most recent.
func (s *ServiceImpl) Create(ctx context.Context) (ShareLink, error) {
	links, err := s.repo.GetAll(ctx)
	if err != nil {
		return ShareLink{}, err
	}

	now := s.clock.Now()
	link := ShareLink{
		ID:          uuid.NewString(),
		URL:         urlPrefix + newToken(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(Expiry),
		AccessCount: 0,
	}

	links = append([]ShareLink{link}, links...)
	if len(links) > MaxLinks {
		links = links[:MaxLinks]
	}

	if err := s.repo.ReplaceAll(ctx, links); err != nil {
		return ShareLink{}, err
	}
	return link, nil
}

// Revoke removes the link unconditionally. Revoking an unknown id is not an
// error.
func (s *ServiceImpl) Revoke(ctx context.Context, id string) error {
	links, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]ShareLink, 0, len(links))
	for _, l := range links {
		if l.ID != id {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == len(links) {
		return nil
	}

	if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
		return fmt.Errorf("could not revoke share link %s: %w", id, err)
	}
	return nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
