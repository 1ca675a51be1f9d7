// Package google implements the Google sign-in flow: a PKCE OAuth
// authorization via the user's browser, followed by a userinfo lookup.
package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/pakuni-pk/pakuni-cli/internal/adapters/driving/oauth"
	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

const (
	authURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL = "https://oauth2.googleapis.com/token"

	// signInTimeout bounds how long we wait for the user to finish
	// in the browser.
	signInTimeout = 5 * time.Minute
)

// Ensure IdentityProvider implements the interface.
var _ driven.IdentityProvider = (*IdentityProvider)(nil)

// IdentityProvider runs the browser-based Google sign-in flow.
type IdentityProvider struct{}

// NewIdentityProvider creates a new Google identity provider.
func NewIdentityProvider() *IdentityProvider {
	return &IdentityProvider{}
}

// SignIn opens the user's browser, completes the PKCE OAuth flow and
// returns the resulting identity.
func (p *IdentityProvider) SignIn(ctx context.Context, settings domain.RemoteSettings) (driven.GoogleIdentity, error) {
	state := oauth.GenerateCodeVerifier()
	verifier := oauth.GenerateCodeVerifier()
	challenge := oauth.GenerateCodeChallenge(verifier)

	server := oauth.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return driven.GoogleIdentity{}, fmt.Errorf("starting callback server: %w", err)
	}
	defer server.Stop()

	cfg := &oauth2.Config{
		ClientID:     settings.GoogleClientID,
		ClientSecret: settings.GoogleClientSecret,
		RedirectURL:  server.RedirectURI(),
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
		Scopes: []string{"openid", "email", "profile"},
	}

	url := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	if err := oauth.OpenBrowser(url); err != nil {
		logger.Warn("Could not open browser: %v", err)
		logger.Info("Open this URL to sign in:\n\n  %s\n", url)
	}

	code, err := server.WaitForCode(signInTimeout)
	if err != nil {
		return driven.GoogleIdentity{}, fmt.Errorf("waiting for authorization: %w", err)
	}

	token, err := cfg.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return driven.GoogleIdentity{}, fmt.Errorf("exchanging authorization code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return driven.GoogleIdentity{}, fmt.Errorf("no id_token in token response")
	}

	profile, err := fetchProfile(ctx, cfg, token)
	if err != nil {
		// The ID token alone is enough to sign in; profile details
		// are best effort.
		logger.Warn("Could not fetch Google profile: %v", err)
		profile = domain.UserProfile{}
	}

	return driven.GoogleIdentity{
		IDToken: idToken,
		Profile: profile,
	}, nil
}

// fetchProfile looks up the signed-in user's details via the Google
// userinfo API.
func fetchProfile(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (domain.UserProfile, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("creating userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetching userinfo: %w", err)
	}

	return domain.UserProfile{
		ID:        info.Id,
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
	}, nil
}
