package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/projectionctl/internal/config"
	"github.com/alexanderramin/projectionctl/internal/db"
	"github.com/alexanderramin/projectionctl/internal/repository"
	"github.com/alexanderramin/projectionctl/internal/service"
)

// wiring is everything one command invocation needs, wired from config.
type wiring struct {
	cfg      config.Config
	logger   *slog.Logger
	services *service.Services
	journal  repository.JournalRepo
	database *sql.DB
}

func openWiring(cfg config.Config, logOut io.Writer, withJournal bool) (*wiring, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	ids, err := service.NewIDGenerator(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}

	rt := &wiring{cfg: cfg, logger: logger, journal: repository.NoopJournalRepo{}}
	if withJournal && cfg.JournalEnabled() {
		database, err := db.OpenDB(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("opening journal: %w", err)
		}
		rt.database = database
		rt.journal = repository.NewSQLiteJournalRepo(database)
	}

	session := service.NewSession(
		repository.NewFileDocumentRepo(nil),
		service.WithJournal(rt.journal),
		service.WithIDGenerator(ids),
		service.WithLogger(logger),
	)
	rt.services = service.NewServices(session, rt.journal)
	return rt, nil
}

// loadDocument loads path, falling back to the configured document.
func (rt *wiring) loadDocument(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = rt.cfg.DocumentPath
	}
	if path == "" {
		return "", fmt.Errorf("no document given; pass a path or set --%s", config.FlagDocument)
	}
	if _, err := rt.services.Session.Load(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

func (rt *wiring) Close() error {
	if rt.database == nil {
		return nil
	}
	return rt.database.Close()
}
