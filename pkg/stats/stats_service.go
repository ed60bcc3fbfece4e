package stats

import (
	"context"

	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/expense"
)

// StatsService binds the pure aggregation functions to the stored expense
// collection and the application clock.
type StatsService interface {
	CategoryTotals(ctx context.Context) ([]CategoryTotal, error)
	DailyTotals(ctx context.Context, windowDays int) ([]DailyTotal, error)
	MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error)
}

type StatsServiceImpl struct {
	repo  expense.Repository
	clock utils.Clock
}

func NewStatsService(repo expense.Repository) *StatsServiceImpl {
	return &StatsServiceImpl{repo: repo, clock: utils.SystemClock{}}
}

func NewStatsServiceWithClock(repo expense.Repository, clock utils.Clock) *StatsServiceImpl {
	return &StatsServiceImpl{repo: repo, clock: clock}
}

func (s *StatsServiceImpl) CategoryTotals(ctx context.Context) ([]CategoryTotal, error) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryTotals(expenses), nil
}

func (s *StatsServiceImpl) DailyTotals(ctx context.Context, windowDays int) ([]DailyTotal, error) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return DailyTotals(expenses, windowDays, s.clock.Now()), nil
}

func (s *StatsServiceImpl) MonthlyTotals(ctx context.Context) ([]MonthlyTotal, error) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyTotals(expenses), nil
}
