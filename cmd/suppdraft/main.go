// Command suppdraft drafts a securities offering supplement from the
// section library and the values of the last finalized deal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/config/file"
	"github.com/custodia-labs/suppdraft/internal/adapters/driven/library"
	"github.com/custodia-labs/suppdraft/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/suppdraft/internal/adapters/driving/cli"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/services"
	"github.com/custodia-labs/suppdraft/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	libraryPath := opts.LibraryPath
	if libraryPath == "" {
		libraryPath = settings.Library.Path
	}
	termSheetPath := opts.TermSheetPath
	if termSheetPath == "" {
		termSheetPath = settings.Library.TermSheetPath
	}

	lib, err := library.NewLoader(libraryPath, termSheetPath).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	logger.Debug("Loaded library with %d variables and %d sections", lib.Catalog.Len(), lib.Draft.Len())

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	sessions := store.SessionStore()

	draft := services.NewDraftService(lib, sessions)
	if err := loadSession(ctx, draft, opts.Session, settings.DefaultSession); err != nil {
		store.Close()
		return nil, err
	}

	final, err := services.NewFinalService(draft)
	if err != nil {
		store.Close()
		return nil, err
	}

	out := &cli.Services{
		Draft:         draft,
		Final:         final,
		Lint:          services.NewLintService(lib.Catalog, settings.Lint.Strict),
		Sessions:      services.NewSessionService(sessions),
		Settings:      settingsService,
		LibraryPath:   libraryPath,
		TermSheetPath: termSheetPath,
		Close:         store.Close,
	}
	if final.Available() {
		out.FinalLint = services.NewLintService(final.Catalog(), settings.Lint.Strict)
	}
	return out, nil
}

// loadSession restores the requested session. A default session that no
// longer exists is skipped so a fresh one starts instead.
func loadSession(ctx context.Context, draft *services.DraftService, requested, fallback string) error {
	if requested != "" {
		if err := draft.Load(ctx, requested); err != nil {
			return fmt.Errorf("load session %s: %w", requested, err)
		}
		return nil
	}
	if fallback == "" {
		return nil
	}

	err := draft.Load(ctx, fallback)
	if errors.Is(err, domain.ErrSessionNotFound) {
		logger.Warn("Default session %s not found, starting a new one", fallback)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session %s: %w", fallback, err)
	}
	return nil
}
