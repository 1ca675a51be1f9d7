// Package cli implements the pakuni command line interface using
// cobra. Services are injected once at startup via Configure; commands
// read them from package state.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	directoryService  driving.DirectoryService
	favouritesService driving.FavouritesService
	authService       driving.AuthService
	syncService       driving.SyncService
	settingsService   driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pakuni",
	Short: "Explore Pakistani universities and scholarships",
	Long: `PakUni is a directory of Pakistani universities and scholarships.

Search and filter the directory, favourite entries you want to come
back to, and keep the local cache in sync with the remote source.
Run without arguments to launch the interactive terminal UI.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

// Services bundles everything the CLI needs.
type Services struct {
	Directory  driving.DirectoryService
	Favourites driving.FavouritesService
	Auth       driving.AuthService
	Sync       driving.SyncService
	Settings   driving.SettingsService
}

// Configure injects the service implementations. Must be called before
// Execute.
func Configure(services Services) {
	directoryService = services.Directory
	favouritesService = services.Favourites
	authService = services.Auth
	syncService = services.Sync
	settingsService = services.Settings
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
