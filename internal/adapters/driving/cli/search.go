package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

var (
	searchCity     string
	searchCategory string
	searchLevel    string
	searchType     string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the directory",
	Long: `Search universities and scholarships by name, short name or city.

Matching is case-insensitive substring search. Category, city and level
filters narrow the results further.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCity, "city", "", "filter by city (exact match)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter universities by category (public|private)")
	searchCmd.Flags().StringVar(&searchLevel, "level", "", "filter scholarships by level (undergraduate|graduate|postgraduate)")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "all", "record type to search (universities|scholarships|all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if directoryService == nil {
		return errors.New("directory service not configured")
	}

	criteria := domain.DefaultFilterCriteria()
	if len(args) == 1 {
		criteria.Query = args[0]
	}
	if searchCity != "" {
		criteria.City = searchCity
	}
	if searchCategory != "" {
		criteria.Category = domain.Category(searchCategory)
		if !criteria.Category.IsValid() {
			return fmt.Errorf("unknown category %q, expected public or private", searchCategory)
		}
	}
	if searchLevel != "" {
		criteria.Level = domain.ScholarshipLevel(searchLevel)
		if !criteria.Level.IsValid() {
			return fmt.Errorf("unknown level %q, expected undergraduate, graduate or postgraduate", searchLevel)
		}
	}

	ctx := cmd.Context()

	var universities []domain.University
	var scholarships []domain.Scholarship
	var err error

	if searchType == "all" || searchType == "universities" {
		universities, err = directoryService.SearchUniversities(ctx, criteria)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
	}
	if searchType == "all" || searchType == "scholarships" {
		scholarships, err = directoryService.SearchScholarships(ctx, criteria)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, universities, scholarships)
	}

	outputUniversityTable(cmd, universities)
	outputScholarshipTable(cmd, scholarships)
	if len(universities) == 0 && len(scholarships) == 0 {
		cmd.Println("No results found.")
	}
	return nil
}

func outputSearchJSON(cmd *cobra.Command, universities []domain.University, scholarships []domain.Scholarship) error {
	payload := map[string]any{}
	if universities != nil {
		payload["universities"] = universities
	}
	if scholarships != nil {
		payload["scholarships"] = scholarships
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputUniversityTable(cmd *cobra.Command, universities []domain.University) {
	if len(universities) == 0 {
		return
	}

	cmd.Printf("Universities (%d):\n\n", len(universities))
	for i, u := range universities {
		cmd.Printf("  [%d] %s\n", i+1, u.DisplayName())
		cmd.Printf("      %s · %s\n", u.City, u.Category.Description())
		if u.Website != "" {
			cmd.Printf("      %s\n", u.Website)
		}
	}
	cmd.Println()
}

func outputScholarshipTable(cmd *cobra.Command, scholarships []domain.Scholarship) {
	if len(scholarships) == 0 {
		return
	}

	cmd.Printf("Scholarships (%d):\n\n", len(scholarships))
	for i, s := range scholarships {
		cmd.Printf("  [%d] %s\n", i+1, s.Title)
		cmd.Printf("      %s · %s\n", s.Provider, s.Level)
		if s.Deadline != "" {
			cmd.Printf("      Deadline: %s\n", s.Deadline)
		}
	}
	cmd.Println()
}
