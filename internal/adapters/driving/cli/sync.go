package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local directory cache",
	Long: `Fetch the latest directory from the remote source and replace the
local cache. Without --force the refresh is skipped while the cache is
still fresh.`,
	RunE: runSync,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache freshness",
	RunE:  runSyncStatus,
}

func init() {
	syncCmd.Flags().BoolVarP(&syncForce, "force", "f", false, "refresh even when the cache is fresh")
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	result, err := syncService.Refresh(cmd.Context(), syncForce)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.Skipped {
		cmd.Println("Cache is fresh, nothing to do. Use --force to refresh anyway.")
		return nil
	}

	cmd.Printf("Refreshed from %s in %v:\n", result.Source, result.Duration.Round(time.Millisecond))
	cmd.Printf("  %d universities\n", result.Universities)
	cmd.Printf("  %d scholarships\n", result.Scholarships)
	return nil
}

func runSyncStatus(cmd *cobra.Command, _ []string) error {
	if syncService == nil {
		return errors.New("sync service not configured")
	}

	status, err := syncService.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading cache status: %w", err)
	}

	if status.RefreshedAt.IsZero() {
		cmd.Println("Cache has never been populated. Run: pakuni sync")
		return nil
	}

	freshness := "fresh"
	if status.Stale {
		freshness = "stale"
	}
	cmd.Printf("Last refresh: %s (%s)\n", status.RefreshedAt.Local().Format("2006-01-02 15:04"), freshness)
	cmd.Printf("  %d universities\n", status.Universities)
	cmd.Printf("  %d scholarships\n", status.Scholarships)
	return nil
}
