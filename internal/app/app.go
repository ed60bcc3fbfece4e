package app

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/database"
	"github.com/spendwise/spendwise/internal/storage"
)

// Application wires configuration, database, and the service graph. It is the
// embedding point for a host program: construct it once, use Deps, Close it
// on the way out.
type Application struct {
	cfg  config.Application
	db   *sql.DB
	Deps *Dependencies
}

// NewApplication loads configuration from the given path (defaults apply when
// the file is missing), opens the database, runs migrations, and builds the
// full dependency graph.
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	store := storage.NewSQLiteStore(db)
	deps := BuildDependencies(store, cfg)

	log.Infof("Application ready, database at %s", cfg.Database.Path)
	return &Application{cfg: cfg, db: db, Deps: deps}, nil
}

// Config returns the loaded application configuration.
func (a *Application) Config() config.Application {
	return a.cfg
}

// Close releases the database handle.
func (a *Application) Close() error {
	return a.db.Close()
}
