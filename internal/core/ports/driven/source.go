package driven

import (
	"context"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// DirectorySource fetches directory records from an upstream source,
// either the remote API or the bundled dataset.
type DirectorySource interface {
	// ListUniversities returns all universities from the source.
	ListUniversities(ctx context.Context) ([]domain.University, error)

	// ListScholarships returns all scholarships from the source.
	ListScholarships(ctx context.Context) ([]domain.Scholarship, error)
}

// TokenExchanger exchanges a Google ID token for a remote session.
type TokenExchanger interface {
	// ExchangeGoogleToken signs in to the remote backend with a
	// Google ID token and returns the resulting session.
	ExchangeGoogleToken(ctx context.Context, idToken string) (domain.Session, error)
}
