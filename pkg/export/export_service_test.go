package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spendwise/spendwise/internal/event_bus"
	"github.com/spendwise/spendwise/internal/storage"
	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/expense"
	"github.com/spendwise/spendwise/pkg/export_history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportClock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)}

func setupExport(t *testing.T) (*ServiceImpl, *expense.StubRepository, export_history.Service, *event_bus.EventBus, string) {
	t.Helper()
	dir := t.TempDir()
	repo := expense.NewStubRepository()
	history := export_history.NewServiceWithClock(export_history.NewRepository(storage.NewMemoryStore()), exportClock)
	bus := event_bus.NewEventBus()
	service := NewService(repo, history, bus, dir, 0).WithClock(exportClock)
	return service, repo, history, bus, dir
}

func seed(t *testing.T, repo *expense.StubRepository) {
	t.Helper()
	err := repo.ReplaceAll(context.Background(), []expense.Expense{
		{ID: "1", Amount: amt("12.50"), Category: expense.CategoryFood, Description: "Lunch", Date: "2024-03-05"},
		{ID: "2", Amount: amt("40.00"), Category: expense.CategoryBills, Description: "Electricity", Date: "2024-03-06"},
		{ID: "3", Amount: amt("5.00"), Category: expense.CategoryBills, Description: "Old bill", Date: "2023-11-01"},
	})
	require.NoError(t, err)
}

func TestExport_DownloadWritesArtifactAndRecordsHistory(t *testing.T) {
	service, repo, history, _, dir := setupExport(t)
	seed(t, repo)
	tpl := Template{
		ID:        "monthly-summary",
		Name:      "Monthly Summary",
		DateRange: RangeThisMonth,
		Format:    FormatCSV,
		Columns:   allColumns,
	}

	entry, err := service.Export(context.Background(), tpl, DestinationDownload)

	require.NoError(t, err)
	assert.Equal(t, export_history.StatusCompleted, entry.Status)
	assert.Equal(t, "Monthly Summary", entry.TemplateName)
	assert.Equal(t, DestinationDownload, entry.Destination)
	assert.Equal(t, 2, entry.RecordCount)
	assert.True(t, entry.TotalAmount.Equal(amt("52.50")))

	content, err := os.ReadFile(filepath.Join(dir, "monthly-summary-2024-03-15.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Date,Category,Description,Amount")
	assert.Contains(t, string(content), "Electricity")
	assert.NotContains(t, string(content), "Old bill")

	entries, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestExport_SimulatedCloudDestinationWritesNoFile(t *testing.T) {
	service, repo, history, _, dir := setupExport(t)
	seed(t, repo)
	tpl := Template{ID: "category-analysis", Name: "Category Analysis", DateRange: RangeAll, Format: FormatJSON, Columns: allColumns}

	entry, err := service.Export(context.Background(), tpl, "google-sheets")

	require.NoError(t, err)
	assert.Equal(t, export_history.StatusCompleted, entry.Status)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	entries, err := history.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExport_WriteFailureRecordsFailedEntry(t *testing.T) {
	service, repo, history, _, dir := setupExport(t)
	seed(t, repo)
	// occupy the export dir path with a plain file so MkdirAll fails
	service.dir = filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(service.dir, []byte("x"), 0o644))
	tpl := Template{ID: "tax-report", Name: "Tax Report", DateRange: RangeAll, Format: FormatCSV, Columns: allColumns}

	_, err := service.Export(context.Background(), tpl, DestinationDownload)

	require.Error(t, err)
	entries, herr := history.List(context.Background())
	require.NoError(t, herr)
	require.Len(t, entries, 1)
	assert.Equal(t, export_history.StatusFailed, entries[0].Status)
	assert.Equal(t, "Tax Report", entries[0].TemplateName)
}

func TestExport_PublishesCompletionEvent(t *testing.T) {
	service, repo, _, bus, _ := setupExport(t)
	seed(t, repo)

	var completed []event_bus.ExportCompleted
	event_bus.SubscribeTyped(bus, event_bus.ExportCompletedEvent, func(e event_bus.Event, payload event_bus.ExportCompleted) error {
		completed = append(completed, payload)
		return nil
	})

	tpl := Template{ID: "tax-report", Name: "Tax Report", DateRange: RangeAll, Format: FormatJSON, Columns: allColumns}
	_, err := service.Export(context.Background(), tpl, "dropbox")

	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Tax Report", completed[0].TemplateName)
	assert.Equal(t, 3, completed[0].RecordCount)
}

func TestExportFiltered_DefaultFilenameAndDateSort(t *testing.T) {
	service, repo, _, _, dir := setupExport(t)
	seed(t, repo)

	path, err := service.ExportFiltered(context.Background(), Options{Format: FormatCSV})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "expenses-2024-03-15.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// ascending by date: the 2023 record comes first
	assert.Less(t, strings.Index(string(content), "Old bill"), strings.Index(string(content), "Lunch"))
}

func TestExportFiltered_AppliesBoundsAndCategories(t *testing.T) {
	service, repo, _, _, _ := setupExport(t)
	seed(t, repo)

	path, err := service.ExportFiltered(context.Background(), Options{
		Format:     FormatJSON,
		Filename:   "bills",
		DateFrom:   "2024-01-01",
		Categories: []expense.Category{expense.CategoryBills},
	})

	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Electricity")
	assert.NotContains(t, string(content), "Lunch")
	assert.NotContains(t, string(content), "Old bill")
}

func TestExport_PrintableDocumentArtifact(t *testing.T) {
	service, repo, _, _, dir := setupExport(t)
	seed(t, repo)
	tpl := Template{ID: "tax-report", Name: "Tax Report", DateRange: RangeThisYear, Format: FormatPDF, Columns: allColumns}

	_, err := service.Export(context.Background(), tpl, DestinationDownload)

	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "tax-report-2024-03-15.html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "<title>Tax Report</title>")
	assert.Contains(t, string(content), "2 records")
}
