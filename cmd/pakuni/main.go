// Command pakuni is a directory of Pakistani universities and
// scholarships with a CLI, an interactive TUI, and an MCP server.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/config/file"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/dataset"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/google"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/storage/sqlite"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driven/supabase"
	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/cli"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/services"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer store.Close()

	bundled, err := newBundledSource()
	if err != nil {
		return fmt.Errorf("loading bundled dataset: %w", err)
	}
	defer bundled.Close()

	// The remote source is optional; the app runs fully offline from
	// the bundled dataset when it is not configured.
	var remote driven.DirectorySource
	var exchanger driven.TokenExchanger
	if client, err := supabase.NewClient(settings.Remote); err == nil {
		remote = client
		exchanger = client
	} else if !errors.Is(err, domain.ErrRemoteNotConfigured) {
		return fmt.Errorf("initialising remote source: %w", err)
	}

	syncService := services.NewSyncService(
		store.UniversityStore(),
		store.ScholarshipStore(),
		remote,
		bundled,
		settings.Cache,
	)
	directoryService := services.NewDirectoryService(
		store.UniversityStore(),
		store.ScholarshipStore(),
		syncService,
	)
	favouritesService := services.NewFavouritesService(
		store.FavouriteStore(),
		store.UniversityStore(),
		store.ScholarshipStore(),
	)
	authService := services.NewAuthService(
		store.SessionStore(),
		google.NewIdentityProvider(),
		exchanger,
		settings.Remote,
	)

	cli.Configure(cli.Services{
		Directory:  directoryService,
		Favourites: favouritesService,
		Auth:       authService,
		Sync:       syncService,
		Settings:   settingsService,
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// newBundledSource prefers a watched override directory under the
// user's data dir, falling back to the embedded dataset when the home
// directory cannot be resolved.
func newBundledSource() (*dataset.Source, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Cannot resolve home directory, using embedded dataset only: %v", err)
		return dataset.NewSource()
	}
	return dataset.NewSourceWithOverride(filepath.Join(home, ".pakuni", "data", "override"))
}
