package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for PakUni resources.
	uriScheme = "pakuni://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full university list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "universities",
		Name:        "universities",
		Description: "All universities in the directory",
		MIMEType:    "application/json",
	}, s.handleUniversitiesResource)

	// Static resource for the full scholarship list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "scholarships",
		Name:        "scholarships",
		Description: "All scholarships in the directory",
		MIMEType:    "application/json",
	}, s.handleScholarshipsResource)

	// Template for a single university.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "universities/{universityId}",
		Name:        "university",
		Description: "Details of a specific university",
		MIMEType:    "application/json",
	}, s.handleUniversityResource)

	// Template for a single scholarship.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "scholarships/{scholarshipId}",
		Name:        "scholarship",
		Description: "Details of a specific scholarship",
		MIMEType:    "application/json",
	}, s.handleScholarshipResource)

	// Static resource for cache freshness.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Freshness of the local directory cache",
		MIMEType:    "application/json",
	}, s.handleStatusResource)
}

// handleUniversitiesResource returns the complete university list.
func (s *Server) handleUniversitiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	universities, err := s.ports.Directory.SearchUniversities(ctx, domain.DefaultFilterCriteria())
	if err != nil {
		return nil, fmt.Errorf("listing universities: %w", err)
	}

	infos := make([]UniversityOutput, len(universities))
	for i := range universities {
		infos[i] = UniversityOutput{
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

	return jsonResult(req.Params.URI, infos)
}

// handleScholarshipsResource returns the complete scholarship list.
func (s *Server) handleScholarshipsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	scholarships, err := s.ports.Directory.SearchScholarships(ctx, domain.DefaultFilterCriteria())
	if err != nil {
		return nil, fmt.Errorf("listing scholarships: %w", err)
	}

	infos := make([]ScholarshipOutput, len(scholarships))
	for i := range scholarships {
		infos[i] = ScholarshipOutput{
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

	return jsonResult(req.Params.URI, infos)
}

// handleUniversityResource returns a single university by ID.
func (s *Server) handleUniversityResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractRecordID(req.Params.URI, "universities/")
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	university, err := s.ports.Directory.GetUniversity(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting university: %w", err)
	}

	return jsonResult(req.Params.URI, university)
}

// handleScholarshipResource returns a single scholarship by ID.
func (s *Server) handleScholarshipResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractRecordID(req.Params.URI, "scholarships/")
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	scholarship, err := s.ports.Directory.GetScholarship(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting scholarship: %w", err)
	}

	return jsonResult(req.Params.URI, scholarship)
}

// handleStatusResource reports how fresh the local cache is.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Sync == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	status, err := s.ports.Sync.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting sync status: %w", err)
	}

	info := struct {
		RefreshedAt  string `json:"refreshed_at,omitempty"`
		Stale        bool   `json:"stale"`
		Universities int    `json:"universities"`
		Scholarships int    `json:"scholarships"`
	}{
		Stale:        status.Stale,
		Universities: status.Universities,
		Scholarships: status.Scholarships,
	}
	if !status.RefreshedAt.IsZero() {
		info.RefreshedAt = status.RefreshedAt.Format(time.RFC3339)
	}

	return jsonResult(req.Params.URI, info)
}

// jsonResult marshals v into a single JSON resource content.
func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecordID extracts the record ID from a URI like
// pakuni://universities/{universityId}.
func extractRecordID(uri, collection string) string {
	prefix := uriScheme + collection

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}

	return id
}
