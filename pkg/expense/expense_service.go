package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/event_bus"
	"github.com/spendwise/spendwise/internal/utils"
)

var ErrNotFound = errors.New("expense not found")

type Service interface {
	List(ctx context.Context) ([]Expense, error)
	Add(ctx context.Context, input FormInput) (Expense, error)
	Update(ctx context.Context, id string, input FormInput) (Expense, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: utils.SystemClock{}}
}

func NewServiceWithClock(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

// Add validates the input and prepends a new expense to the collection, so
// persisted order stays newest-first by creation.
func (s *ServiceImpl) Add(ctx context.Context, input FormInput) (Expense, error) {
	amount, verrs := input.Validate()
	if verrs != nil {
		return Expense{}, verrs
	}

	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return Expense{}, err
	}

	created := Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.ReplaceAll(ctx, append([]Expense{created}, expenses...)); err != nil {
		return Expense{}, err
	}

	s.publishChange(ctx, event_bus.ExpenseCreatedEvent, created)
	return created, nil
}

// Update replaces every user-editable field of an existing expense. ID and
// CreatedAt are kept as assigned at creation.
func (s *ServiceImpl) Update(ctx context.Context, id string, input FormInput) (Expense, error) {
	amount, verrs := input.Validate()
	if verrs != nil {
		return Expense{}, verrs
	}

	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return Expense{}, err
	}

	for i, e := range expenses {
		if e.ID != id {
			continue
		}
		e.Amount = amount
		e.Category = input.Category
		e.Description = strings.TrimSpace(input.Description)
		e.Date = input.Date
		expenses[i] = e

		if err := s.repo.ReplaceAll(ctx, expenses); err != nil {
			return Expense{}, err
		}
		s.publishChange(ctx, event_bus.ExpenseUpdatedEvent, e)
		return e, nil
	}

	return Expense{}, fmt.Errorf("updating expense %s: %w", id, ErrNotFound)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	for i, e := range expenses {
		if e.ID != id {
			continue
		}
		remaining := append(expenses[:i], expenses[i+1:]...)
		if err := s.repo.ReplaceAll(ctx, remaining); err != nil {
			return err
		}
		if s.bus != nil {
			if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{ID: id})); err != nil {
				log.Warnf("expense delete event not fully delivered: %v", err)
			}
		}
		return nil
	}

	return fmt.Errorf("deleting expense %s: %w", id, ErrNotFound)
}

func (s *ServiceImpl) publishChange(ctx context.Context, eventType event_bus.EventType, e Expense) {
	if s.bus == nil {
		return
	}
	payload := event_bus.ExpenseChanged{
		ID:       e.ID,
		Category: string(e.Category),
		Amount:   e.Amount,
		Date:     e.Date,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, payload)); err != nil {
		log.Warnf("expense change event not fully delivered: %v", err)
	}
}
