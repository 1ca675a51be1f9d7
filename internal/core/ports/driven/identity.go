package driven

import (
	"context"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// GoogleIdentity is the result of a completed Google sign-in flow.
type GoogleIdentity struct {
	// IDToken is the Google-issued ID token, ready to exchange for
	// a remote session.
	IDToken string

	// Profile holds the user details fetched from Google.
	Profile domain.UserProfile
}

// IdentityProvider runs the browser-based Google sign-in flow.
type IdentityProvider interface {
	// SignIn opens the user's browser, completes the OAuth flow and
	// returns the resulting identity.
	SignIn(ctx context.Context, settings domain.RemoteSettings) (GoogleIdentity, error)
}
