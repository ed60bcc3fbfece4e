package app

import (
	"time"

	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/event_bus"
	"github.com/spendwise/spendwise/internal/storage"
	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/cloud_service"
	"github.com/spendwise/spendwise/pkg/expense"
	"github.com/spendwise/spendwise/pkg/export"
	"github.com/spendwise/spendwise/pkg/export_history"
	"github.com/spendwise/spendwise/pkg/schedule"
	"github.com/spendwise/spendwise/pkg/share"
	"github.com/spendwise/spendwise/pkg/stats"
)

// Dependencies holds all repositories and services of the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	ExpenseRepo    expense.Repository
	ExpenseService expense.Service

	StatsService stats.StatsService

	HistoryRepo    export_history.Repository
	HistoryService export_history.Service

	ExportService export.Service

	ScheduleRepo    schedule.Repository
	ScheduleService schedule.Service

	ShareRepo    share.Repository
	ShareService share.Service

	CloudServiceRepo    cloud_service.Repository
	CloudServiceService cloud_service.Service

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application repositories and services.
func BuildDependencies(store storage.BlobStore, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()

	deps.ExpenseRepo = expense.NewRepository(store)
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.EventBus)

	deps.StatsService = stats.NewStatsService(deps.ExpenseRepo)

	deps.HistoryRepo = export_history.NewRepository(store)
	deps.HistoryService = export_history.NewService(deps.HistoryRepo)

	delay := time.Duration(cfg.Export.ProcessingDelayMs) * time.Millisecond
	deps.ExportService = export.NewService(deps.ExpenseRepo, deps.HistoryService, deps.EventBus, cfg.Export.Dir, delay)

	deps.ScheduleRepo = schedule.NewRepository(store)
	deps.ScheduleService = schedule.NewService(deps.ScheduleRepo)

	deps.ShareRepo = share.NewRepository(store)
	deps.ShareService = share.NewService(deps.ShareRepo)

	deps.CloudServiceRepo = cloud_service.NewRepository(store)
	deps.CloudServiceService = cloud_service.NewService(deps.CloudServiceRepo)

	return deps
}
