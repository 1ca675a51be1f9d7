package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in account",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with Google",
	Long: `Sign in with your Google account via the browser.

Requires the remote backend and Google client to be configured; see
pakuni settings.`,
	RunE: runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE:  runAuthLogout,
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runAuthWhoami,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	cmd.Println("Opening your browser to sign in with Google...")

	profile, err := authService.SignIn(cmd.Context())
	if errors.Is(err, domain.ErrRemoteNotConfigured) {
		return fmt.Errorf("sign-in is not configured: %w", err)
	}
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cmd.Printf("Signed in as %s", profile.Email)
	if profile.Name != "" {
		cmd.Printf(" (%s)", profile.Name)
	}
	cmd.Println()
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := authService.SignOut(cmd.Context()); err != nil {
		return fmt.Errorf("sign-out failed: %w", err)
	}
	cmd.Println("Signed out.")
	return nil
}

func runAuthWhoami(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	profile, err := authService.CurrentUser(cmd.Context())
	if errors.Is(err, domain.ErrNotSignedIn) {
		cmd.Println("Not signed in. Run: pakuni auth login")
		return nil
	}
	if errors.Is(err, domain.ErrAuthExpired) {
		cmd.Println("Session expired. Run: pakuni auth login")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	cmd.Printf("Signed in as %s", profile.Email)
	if profile.Name != "" {
		cmd.Printf(" (%s)", profile.Name)
	}
	cmd.Println()
	if profile.IsAdmin() {
		cmd.Println("Role: admin")
	}
	return nil
}
