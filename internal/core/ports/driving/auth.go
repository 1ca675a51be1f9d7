package driving

import (
	"context"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

// AuthService manages Google sign-in against the remote backend.
type AuthService interface {
	// SignIn runs the browser-based Google sign-in flow and stores
	// the resulting session. Returns domain.ErrRemoteNotConfigured
	// if the remote backend or Google client is not configured.
	SignIn(ctx context.Context) (domain.UserProfile, error)

	// SignOut deletes the stored session. Signing out while signed
	// out is not an error.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user's profile, or
	// domain.ErrNotSignedIn when no valid session exists.
	CurrentUser(ctx context.Context) (domain.UserProfile, error)
}
