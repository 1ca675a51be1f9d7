package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// SearchUniversitiesInput is the input schema for the
// search_universities tool.
type SearchUniversitiesInput struct {
	Query    string `json:"query,omitempty" jsonschema:"substring to match against name, short name or city"`
	City     string `json:"city,omitempty" jsonschema:"exact city to filter by, e.g. Lahore"`
	Category string `json:"category,omitempty" jsonschema:"university category, public or private"`
}

// UniversityOutput represents a single university result.
type UniversityOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Website     string `json:"website,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Ranking     int    `json:"ranking,omitempty"`
}

// SearchUniversitiesOutput is the output schema for the
// search_universities tool.
type SearchUniversitiesOutput struct {
	Results []UniversityOutput `json:"results"`
	Count   int                `json:"count"`
}

// SearchScholarshipsInput is the input schema for the
// search_scholarships tool.
type SearchScholarshipsInput struct {
	Query string `json:"query,omitempty" jsonschema:"substring to match against title, provider or city"`
	Level string `json:"level,omitempty" jsonschema:"scholarship level: undergraduate, graduate or postgraduate"`
	City  string `json:"city,omitempty" jsonschema:"exact city to filter by"`
}

// ScholarshipOutput represents a single scholarship result.
type ScholarshipOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Level    string `json:"level"`
	City     string `json:"city,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Deadline string `json:"deadline,omitempty"`
	URL      string `json:"url,omitempty"`
}

// SearchScholarshipsOutput is the output schema for the
// search_scholarships tool.
type SearchScholarshipsOutput struct {
	Results []ScholarshipOutput `json:"results"`
	Count   int                 `json:"count"`
}

// ListCitiesInput is the input schema for the list_cities tool.
type ListCitiesInput struct{}

// ListCitiesOutput is the output schema for the list_cities tool.
type ListCitiesOutput struct {
	Cities []string `json:"cities"`
}

// ListFavouritesInput is the input schema for the list_favourites tool.
type ListFavouritesInput struct{}

// ListFavouritesOutput is the output schema for the list_favourites
// tool.
type ListFavouritesOutput struct {
	Universities []UniversityOutput  `json:"universities"`
	Scholarships []ScholarshipOutput `json:"scholarships"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_universities",
		Description: "Search Pakistani universities by name, city or category",
	}, s.handleSearchUniversities)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_scholarships",
		Description: "Search scholarships available to Pakistani students",
	}, s.handleSearchScholarships)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_cities",
		Description: "List the cities that have universities in the directory",
	}, s.handleListCities)

	if s.ports.Favourites != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_favourites",
			Description: "List the records the user has favourited",
		}, s.handleListFavourites)
	}
}

// handleSearchUniversities handles the search_universities tool
// invocation.
func (s *Server) handleSearchUniversities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchUniversitiesInput,
) (*mcp.CallToolResult, SearchUniversitiesOutput, error) {
	criteria := domain.DefaultFilterCriteria()
	criteria.Query = input.Query
	if input.City != "" {
		criteria.City = input.City
	}
	if input.Category != "" {
		criteria.Category = domain.Category(input.Category)
	}

	results, err := s.ports.Directory.SearchUniversities(ctx, criteria)
	if err != nil {
		return nil, SearchUniversitiesOutput{}, err
	}

	output := SearchUniversitiesOutput{
		Results: make([]UniversityOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = UniversityOutput{
			ID:          results[i].ID,
			Name:        results[i].Name,
			ShortName:   results[i].ShortName,
			City:        results[i].City,
			Category:    string(results[i].Category),
			Website:     results[i].Website,
			FoundedYear: results[i].FoundedYear,
			Ranking:     results[i].Ranking,
		}
	}

	return nil, output, nil
}

// handleSearchScholarships handles the search_scholarships tool
// invocation.
func (s *Server) handleSearchScholarships(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchScholarshipsInput,
) (*mcp.CallToolResult, SearchScholarshipsOutput, error) {
	criteria := domain.DefaultFilterCriteria()
	criteria.Query = input.Query
	if input.City != "" {
		criteria.City = input.City
	}
	if input.Level != "" {
		criteria.Level = domain.ScholarshipLevel(input.Level)
	}

	results, err := s.ports.Directory.SearchScholarships(ctx, criteria)
	if err != nil {
		return nil, SearchScholarshipsOutput{}, err
	}

	output := SearchScholarshipsOutput{
		Results: make([]ScholarshipOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = ScholarshipOutput{
			ID:       results[i].ID,
			Title:    results[i].Title,
			Provider: results[i].Provider,
			Level:    string(results[i].Level),
			City:     results[i].City,
			Amount:   results[i].Amount,
			Deadline: results[i].Deadline,
			URL:      results[i].URL,
		}
	}

	return nil, output, nil
}

// handleListCities handles the list_cities tool invocation.
func (s *Server) handleListCities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCitiesInput,
) (*mcp.CallToolResult, ListCitiesOutput, error) {
	cities, err := s.ports.Directory.Cities(ctx)
	if err != nil {
		return nil, ListCitiesOutput{}, err
	}
	return nil, ListCitiesOutput{Cities: cities}, nil
}

// handleListFavourites handles the list_favourites tool invocation.
func (s *Server) handleListFavourites(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListFavouritesInput,
) (*mcp.CallToolResult, ListFavouritesOutput, error) {
	universities, err := s.ports.Favourites.ListUniversities(ctx)
	if err != nil {
		return nil, ListFavouritesOutput{}, err
	}

	scholarships, err := s.ports.Favourites.ListScholarships(ctx)
	if err != nil {
		return nil, ListFavouritesOutput{}, err
	}

	output := ListFavouritesOutput{
		Universities: make([]UniversityOutput, len(universities)),
		Scholarships: make([]ScholarshipOutput, len(scholarships)),
	}
	for i := range universities {
		output.Universities[i] = UniversityOutput{
			ID:          universities[i].ID,
			Name:        universities[i].Name,
			ShortName:   universities[i].ShortName,
			City:        universities[i].City,
			Category:    string(universities[i].Category),
			Website:     universities[i].Website,
			FoundedYear: universities[i].FoundedYear,
			Ranking:     universities[i].Ranking,
		}
	}
	for i := range scholarships {
		output.Scholarships[i] = ScholarshipOutput{
			ID:       scholarships[i].ID,
			Title:    scholarships[i].Title,
			Provider: scholarships[i].Provider,
			Level:    string(scholarships[i].Level),
			City:     scholarships[i].City,
			Amount:   scholarships[i].Amount,
			Deadline: scholarships[i].Deadline,
			URL:      scholarships[i].URL,
		}
	}

	return nil, output, nil
}
