package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driving"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService manages Google sign-in against the remote backend.
type AuthService struct {
	sessions  driven.SessionStore
	identity  driven.IdentityProvider
	exchanger driven.TokenExchanger
	remote    domain.RemoteSettings
}

// NewAuthService creates a new auth service. identity and exchanger
// may be nil when the remote backend is not configured.
func NewAuthService(
	sessions driven.SessionStore,
	identity driven.IdentityProvider,
	exchanger driven.TokenExchanger,
	remote domain.RemoteSettings,
) *AuthService {
	return &AuthService{
		sessions:  sessions,
		identity:  identity,
		exchanger: exchanger,
		remote:    remote,
	}
}

// SignIn runs the browser-based Google sign-in flow and stores the
// resulting session.
func (s *AuthService) SignIn(ctx context.Context) (domain.UserProfile, error) {
	if !s.remote.SupportsSignIn() || s.identity == nil || s.exchanger == nil {
		return domain.UserProfile{}, fmt.Errorf(
			"%w: set remote.url, remote.anon_key and google.client_id first", domain.ErrRemoteNotConfigured)
	}

	identity, err := s.identity.SignIn(ctx, s.remote)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("google sign-in: %w", err)
	}

	session, err := s.exchanger.ExchangeGoogleToken(ctx, identity.IDToken)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("exchange token: %w", err)
	}

	// The remote session owns identity; the Google profile fills in
	// anything the backend did not return.
	if session.User.Email == "" {
		session.User.Email = identity.Profile.Email
	}
	if session.User.Name == "" {
		session.User.Name = identity.Profile.Name
	}
	if session.User.AvatarURL == "" {
		session.User.AvatarURL = identity.Profile.AvatarURL
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return domain.UserProfile{}, fmt.Errorf("store session: %w", err)
	}

	logger.Info("Signed in as %s", session.User.Email)
	return session.User, nil
}

// SignOut deletes the stored session.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in user's profile.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.UserProfile, error) {
	session, err := s.sessions.Get(ctx)
	if errors.Is(err, domain.ErrNotSignedIn) || errors.Is(err, domain.ErrNotFound) {
		return domain.UserProfile{}, domain.ErrNotSignedIn
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load session: %w", err)
	}

	if session.Expired() {
		return domain.UserProfile{}, domain.ErrAuthExpired
	}
	return session.User, nil
}
