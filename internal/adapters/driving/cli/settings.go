package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the remote backend, cache and UI settings.

Run the wizard subcommand to configure everything step by step.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Remote]")
	if settings.Remote.URL != "" {
		cmd.Printf("  URL: %s\n", settings.Remote.URL)
	} else {
		cmd.Printf("  URL: (not set)\n")
	}
	if settings.Remote.AnonKey != "" {
		cmd.Printf("  Anon Key: %s\n", maskKey(settings.Remote.AnonKey))
	} else {
		cmd.Printf("  Anon Key: (not set)\n")
	}
	status := "configured"
	if !settings.Remote.IsConfigured() {
		status = "not configured, using bundled dataset"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Google Sign-In]")
	if settings.Remote.GoogleClientID != "" {
		cmd.Printf("  Client ID: %s\n", settings.Remote.GoogleClientID)
	} else {
		cmd.Printf("  Client ID: (not set)\n")
	}
	signIn := "available"
	if !settings.Remote.SupportsSignIn() {
		signIn = "unavailable"
	}
	cmd.Printf("  Status: %s\n", signIn)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  TTL: %s\n", settings.Cache.TTL)
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Debounce Delay: %s\n", settings.UI.DebounceDelay)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("PakUni Setup")
	cmd.Println("============")
	cmd.Println()

	cmd.Printf("Supabase URL [%s]: ", orUnset(settings.Remote.URL))
	if input := readLine(reader); input != "" {
		settings.Remote.URL = input
	}

	cmd.Print("Supabase anon key (hidden): ")
	if input := readPassword(); input != "" {
		settings.Remote.AnonKey = input
	}
	cmd.Println()

	cmd.Printf("Google OAuth client ID [%s]: ", orUnset(settings.Remote.GoogleClientID))
	if input := readLine(reader); input != "" {
		settings.Remote.GoogleClientID = input
	}

	cmd.Print("Google OAuth client secret (hidden, optional): ")
	if input := readPassword(); input != "" {
		settings.Remote.GoogleClientSecret = input
	}
	cmd.Println()

	cmd.Printf("Cache TTL [%s]: ", settings.Cache.TTL)
	if input := readLine(reader); input != "" {
		ttl, err := time.ParseDuration(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		settings.Cache.TTL = ttl
	}

	cmd.Printf("Search debounce delay [%s]: ", settings.UI.DebounceDelay)
	if input := readLine(reader); input != "" {
		delay, err := time.ParseDuration(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		settings.UI.DebounceDelay = delay
	}

	if err := settingsService.Update(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Println()
	cmd.Printf("Settings saved to %s\n", settingsService.ConfigPath())
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "not set"
	}
	return value
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
