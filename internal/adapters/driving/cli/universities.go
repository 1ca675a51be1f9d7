package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

var (
	universitiesCity     string
	universitiesCategory string
	universitiesJSON     bool
)

var universitiesCmd = &cobra.Command{
	Use:   "universities",
	Short: "List universities",
	RunE:  runUniversities,
}

var universitiesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one university in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runUniversitiesShow,
}

var universitiesCitiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities present in the directory",
	RunE:  runUniversitiesCities,
}

func init() {
	universitiesCmd.Flags().StringVar(&universitiesCity, "city", "", "filter by city (exact match)")
	universitiesCmd.Flags().StringVar(&universitiesCategory, "category", "", "filter by category (public|private)")
	universitiesCmd.Flags().BoolVar(&universitiesJSON, "json", false, "output as JSON")
	universitiesCmd.AddCommand(universitiesShowCmd)
	universitiesCmd.AddCommand(universitiesCitiesCmd)
	rootCmd.AddCommand(universitiesCmd)
}

func runUniversities(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	criteria := domain.DefaultFilterCriteria()
	if universitiesCity != "" {
		criteria.City = universitiesCity
	}
	if universitiesCategory != "" {
		criteria.Category = domain.Category(universitiesCategory)
		if !criteria.Category.IsValid() {
			return fmt.Errorf("unknown category %q, expected public or private", universitiesCategory)
		}
	}

	universities, err := directoryService.SearchUniversities(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("listing universities: %w", err)
	}

	if universitiesJSON {
		data, err := json.MarshalIndent(universities, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal universities: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(universities) == 0 {
		cmd.Println("No universities found.")
		return nil
	}
	outputUniversityTable(cmd, universities)
	return nil
}

func runUniversitiesShow(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	u, err := directoryService.GetUniversity(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no university with ID %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("looking up university: %w", err)
	}

	cmd.Println(u.DisplayName())
	cmd.Printf("  City:     %s\n", u.City)
	cmd.Printf("  Category: %s\n", u.Category.Description())
	if u.FoundedYear > 0 {
		cmd.Printf("  Founded:  %d\n", u.FoundedYear)
	}
	if u.Ranking > 0 {
		cmd.Printf("  Ranking:  #%d\n", u.Ranking)
	}
	if u.Address != "" {
		cmd.Printf("  Address:  %s\n", u.Address)
	}
	if u.Phone != "" {
		cmd.Printf("  Phone:    %s\n", u.Phone)
	}
	if u.Email != "" {
		cmd.Printf("  Email:    %s\n", u.Email)
	}
	if u.Website != "" {
		cmd.Printf("  Website:  %s\n", u.Website)
	}
	return nil
}

func runUniversitiesCities(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	cities, err := directoryService.Cities(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing cities: %w", err)
	}

	for _, city := range cities {
		cmd.Println(city)
	}
	return nil
}
