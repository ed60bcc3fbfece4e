package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spendwise/spendwise/internal/utils"
)

// Export runs fire at 09:00 local time; the original design only pinned the
// day, so the hour is fixed here.
var cronByFrequency = map[Frequency]string{
	FrequencyDaily:   "0 9 * * *",
	FrequencyWeekly:  "0 9 * * 1",
	FrequencyMonthly: "0 9 1 * *",
}

type Service interface {
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg Config) (Config, error)
	Remove(ctx context.Context) error
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

func (s *ServiceImpl) Get(ctx context.Context) (*Config, error) {
	return s.repo.Get(ctx)
}

// Save stamps NextRun from the frequency and replaces the stored config.
func (s *ServiceImpl) Save(ctx context.Context, cfg Config) (Config, error) {
	if !cfg.Frequency.IsValid() {
		return Config{}, fmt.Errorf("unknown schedule frequency %q", cfg.Frequency)
	}

	nextRun, err := NextRun(cfg.Frequency, s.clock.Now())
	if err != nil {
		return Config{}, err
	}
	cfg.NextRun = nextRun

	if err := s.repo.Replace(ctx, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s *ServiceImpl) Remove(ctx context.Context) error {
	return s.repo.Delete(ctx)
}

// NextRun computes the next scheduled export time after now for the given
// frequency.
func NextRun(frequency Frequency, now time.Time) (time.Time, error) {
	expr, ok := cronByFrequency[frequency]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown schedule frequency %q", frequency)
	}
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse schedule expression: %w", err)
	}
	return sched.Next(now), nil
}
