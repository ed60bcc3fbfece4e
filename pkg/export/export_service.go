package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spendwise/spendwise/internal/event_bus"
	"github.com/spendwise/spendwise/internal/utils"
	"github.com/spendwise/spendwise/pkg/expense"
	"github.com/spendwise/spendwise/pkg/export_history"
	"github.com/spendwise/spendwise/pkg/stats"
)

// Destinations with a local artifact. Every other destination is a simulated
// cloud send: it produces a history entry but no file.
const (
	DestinationDownload = "download"
	DestinationEmail    = "email"
)

// Options describes an ad-hoc export assembled interactively, as opposed to
// a canned template.
type Options struct {
	Format     Format
	Filename   string // without extension; defaults to expenses-<today>
	DateFrom   string
	DateTo     string
	Categories []expense.Category
}

type Service interface {
	Templates() []Template
	Export(ctx context.Context, tpl Template, destination string) (export_history.Entry, error)
	ExportFiltered(ctx context.Context, opts Options) (string, error)
}

type ServiceImpl struct {
	expenseRepo expense.Repository
	history     export_history.Service
	bus         *event_bus.EventBus
	clock       utils.Clock
	dir         string
	// delay simulates processing latency for UX feedback only; it carries no
	// real work and tests run with zero.
	delay time.Duration
}

func NewService(expenseRepo expense.Repository, history export_history.Service, bus *event_bus.EventBus, dir string, delay time.Duration) *ServiceImpl {
	return &ServiceImpl{
		expenseRepo: expenseRepo,
		history:     history,
		bus:         bus,
		clock:       utils.SystemClock{},
		dir:         dir,
		delay:       delay,
	}
}

func (s *ServiceImpl) WithClock(clock utils.Clock) *ServiceImpl {
	s.clock = clock
	return s
}

func (s *ServiceImpl) Templates() []Template {
	return BuiltinTemplates()
}

// Export runs a one-click template export: apply the template, serialize,
// perform the destination side effect, then record a history entry. The
// returned entry is completed on success; a failed entry is recorded when
// the artifact cannot be written.
func (s *ServiceImpl) Export(ctx context.Context, tpl Template, destination string) (export_history.Entry, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return export_history.Entry{}, err
	}

	now := s.clock.Now()
	filtered := ApplyTemplate(expenses, tpl, now)
	total := stats.GrandTotal(filtered)

	s.simulateProcessing()

	entry := export_history.Entry{
		Destination:  destination,
		TemplateName: tpl.Name,
		RecordCount:  len(filtered),
		TotalAmount:  total,
		Status:       export_history.StatusCompleted,
	}

	if destination == DestinationDownload || destination == DestinationEmail {
		filename := fmt.Sprintf("%s-%s.%s", tpl.ID, utils.FormatDate(now), extension(tpl.Format))
		if err := s.writeArtifact(tpl, filtered, total, filename, now); err != nil {
			entry.Status = export_history.StatusFailed
			if _, herr := s.history.Append(ctx, entry); herr != nil {
				log.Errorf("could not record failed export: %v", herr)
			}
			return export_history.Entry{}, err
		}
	}

	recorded, err := s.history.Append(ctx, entry)
	if err != nil {
		return export_history.Entry{}, err
	}

	if s.bus != nil {
		event := event_bus.NewEvent(ctx, event_bus.ExportCompletedEvent, event_bus.ExportCompleted{
			TemplateName: tpl.Name,
			Destination:  destination,
			RecordCount:  len(filtered),
			TotalAmount:  total,
			Timestamp:    recorded.Timestamp,
		})
		if err := s.bus.Publish(event); err != nil {
			log.Warnf("export completion event not fully delivered: %v", err)
		}
	}

	return recorded, nil
}

// ExportFiltered runs an ad-hoc export over explicit filter options and
// writes the artifact locally. It returns the written path. Ad-hoc exports
// do not appear in history.
func (s *ServiceImpl) ExportFiltered(ctx context.Context, opts Options) (string, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	selected := expense.Select(expenses, expense.Selection{
		Categories: opts.Categories,
		DateFrom:   opts.DateFrom,
		DateTo:     opts.DateTo,
	})
	filtered := expense.Sort(selected, expense.SortByDate, expense.SortAsc)

	s.simulateProcessing()

	now := s.clock.Now()
	name := opts.Filename
	if name == "" {
		name = "expenses-" + utils.FormatDate(now)
	}
	filename := fmt.Sprintf("%s.%s", name, extension(opts.Format))

	tpl := Template{
		Name:    "Expense Report",
		Format:  opts.Format,
		Columns: []string{ColumnDate, ColumnCategory, ColumnDescription, ColumnAmount},
	}
	if err := s.writeArtifact(tpl, filtered, stats.GrandTotal(filtered), filename, now); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, filename), nil
}

func (s *ServiceImpl) writeArtifact(tpl Template, expenses []expense.Expense, total decimal.Decimal, filename string, now time.Time) error {
	var content string
	var err error
	switch tpl.Format {
	case FormatJSON:
		content, err = RenderJSON(expenses)
	case FormatPDF:
		content, err = RenderDocument(tpl.Name, expenses, tpl.Columns, total, now)
	default:
		content, err = RenderCSV(expenses, tpl.Columns)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create export directory: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("could not write export artifact: %w", err)
	}
	log.Debugf("export artifact written to %s", path)
	return nil
}

func (s *ServiceImpl) simulateProcessing() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// The printable document is HTML that prints itself; it gets an html
// extension rather than pretending to be a binary pdf.
func extension(f Format) string {
	if f == FormatPDF {
		return "html"
	}
	return string(f)
}
