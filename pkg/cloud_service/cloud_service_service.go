package cloud_service

import (
	"context"
	"fmt"

	"github.com/spendwise/spendwise/internal/utils"
)

var ErrUnknownService = fmt.Errorf("unknown cloud service")

type Service interface {
	List(ctx context.Context) ([]CloudService, error)
	SetConnected(ctx context.Context, id string, connected bool) (CloudService, error)
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

// List returns the catalog with stored toggles applied over the defaults.
func (s *ServiceImpl) List(ctx context.Context) ([]CloudService, error) {
	connections, err := s.repo.GetConnections(ctx)
	if err != nil {
		return nil, err
	}

	services := Catalog()
	for i, svc := range services {
		if connected, ok := connections[svc.ID]; ok {
			services[i].Connected = connected
		}
	}
	return services, nil
}

// SetConnected toggles one service and returns its updated catalog entry,
// stamped with a sync time when connecting.
func (s *ServiceImpl) SetConnected(ctx context.Context, id string, connected bool) (CloudService, error) {
	var target *CloudService
	for _, svc := range Catalog() {
		if svc.ID == id {
			svc := svc
			target = &svc
			break
		}
	}
	if target == nil {
		return CloudService{}, fmt.Errorf("%w: %s", ErrUnknownService, id)
	}

	connections, err := s.repo.GetConnections(ctx)
	if err != nil {
		return CloudService{}, err
	}
	connections[id] = connected
	if err := s.repo.ReplaceConnections(ctx, connections); err != nil {
		return CloudService{}, err
	}

	target.Connected = connected
	if connected {
		now := s.clock.Now()
		target.LastSync = &now
	}
	return *target, nil
}
