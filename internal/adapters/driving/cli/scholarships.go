package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

var (
	scholarshipsLevel string
	scholarshipsCity  string
	scholarshipsJSON  bool
)

var scholarshipsCmd = &cobra.Command{
	Use:   "scholarships",
	Short: "List scholarships",
	RunE:  runScholarships,
}

var scholarshipsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one scholarship in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runScholarshipsShow,
}

func init() {
	scholarshipsCmd.Flags().StringVar(&scholarshipsLevel, "level", "", "filter by level (undergraduate|graduate|postgraduate)")
	scholarshipsCmd.Flags().StringVar(&scholarshipsCity, "city", "", "filter by city (exact match)")
	scholarshipsCmd.Flags().BoolVar(&scholarshipsJSON, "json", false, "output as JSON")
	scholarshipsCmd.AddCommand(scholarshipsShowCmd)
	rootCmd.AddCommand(scholarshipsCmd)
}

func runScholarships(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	criteria := domain.DefaultFilterCriteria()
	if scholarshipsCity != "" {
		criteria.City = scholarshipsCity
	}
	if scholarshipsLevel != "" {
		criteria.Level = domain.ScholarshipLevel(scholarshipsLevel)
		if !criteria.Level.IsValid() {
			return fmt.Errorf("unknown level %q, expected undergraduate, graduate or postgraduate", scholarshipsLevel)
		}
	}

	scholarships, err := directoryService.SearchScholarships(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("listing scholarships: %w", err)
	}

	if scholarshipsJSON {
		data, err := json.MarshalIndent(scholarships, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal scholarships: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(scholarships) == 0 {
		cmd.Println("No scholarships found.")
		return nil
	}
	outputScholarshipTable(cmd, scholarships)
	return nil
}

func runScholarshipsShow(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	s, err := directoryService.GetScholarship(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no scholarship with ID %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("looking up scholarship: %w", err)
	}

	cmd.Println(s.Title)
	cmd.Printf("  Provider: %s\n", s.Provider)
	cmd.Printf("  Level:    %s\n", s.Level)
	if s.City != "" {
		cmd.Printf("  City:     %s\n", s.City)
	}
	if s.Amount != "" {
		cmd.Printf("  Amount:   %s\n", s.Amount)
	}
	if s.Deadline != "" {
		cmd.Printf("  Deadline: %s\n", s.Deadline)
	}
	if s.URL != "" {
		cmd.Printf("  URL:      %s\n", s.URL)
	}
	if s.Description != "" {
		cmd.Printf("\n  %s\n", s.Description)
	}
	return nil
}
