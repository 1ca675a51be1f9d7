// Package supabase implements the remote directory source and token
// exchange against a Supabase project's REST and auth APIs.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
	"github.com/pakuni-pk/pakuni-cli/internal/logger"
)

const (
	requestTimeout = 30 * time.Second

	// Supabase free tier tolerates far more, but the directory is
	// small and refreshes are rare.
	requestsPerSecond = 5.0
	burstSize         = 10
)

// Ensure Client implements the interfaces.
var (
	_ driven.DirectorySource = (*Client)(nil)
	_ driven.TokenExchanger  = (*Client)(nil)
)

// Client talks to a Supabase project's REST and auth endpoints.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Supabase client from the given remote settings.
// Returns domain.ErrRemoteNotConfigured if the settings are incomplete.
func NewClient(settings domain.RemoteSettings) (*Client, error) {
	if !settings.IsConfigured() {
		return nil, domain.ErrRemoteNotConfigured
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{Timeout: requestTimeout}
	// 429 is surfaced to the caller as ErrRateLimited instead of
	// being retried blindly.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &Client{
		baseURL: strings.TrimRight(settings.URL, "/"),
		anonKey: settings.AnonKey,
		http:    retryClient.StandardClient(),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}, nil
}

// ListUniversities fetches all universities from the REST API.
func (c *Client) ListUniversities(ctx context.Context) ([]domain.University, error) {
	var records []domain.University
	err := c.getJSON(ctx, "/rest/v1/universities?select=*&order=ranking.asc", &records)
	if err != nil {
		return nil, fmt.Errorf("fetching universities: %w", err)
	}
	return records, nil
}

// ListScholarships fetches all scholarships from the REST API.
func (c *Client) ListScholarships(ctx context.Context) ([]domain.Scholarship, error) {
	var records []domain.Scholarship
	err := c.getJSON(ctx, "/rest/v1/scholarships?select=*&order=title.asc", &records)
	if err != nil {
		return nil, fmt.Errorf("fetching scholarships: %w", err)
	}
	return records, nil
}

// tokenResponse is the Supabase auth token grant response.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Metadata struct {
			FullName  string `json:"full_name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// ExchangeGoogleToken signs in with a Google ID token and returns the
// resulting session.
func (c *Client) ExchangeGoogleToken(ctx context.Context, idToken string) (domain.Session, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Session{}, err
	}

	payload, err := json.Marshal(map[string]string{
		"provider": "google",
		"id_token": idToken,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("encoding token request: %w", err)
	}

	url := c.baseURL + "/auth/v1/token?grant_type=id_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.Session{}, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return domain.Session{}, fmt.Errorf("exchanging token: %w", err)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return domain.Session{}, fmt.Errorf("decoding token response: %w", err)
	}

	now := time.Now()
	return domain.Session{
		ID:           uuid.NewString(),
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(token.ExpiresIn) * time.Second),
		User: domain.UserProfile{
			ID:        token.User.ID,
			Email:     token.User.Email,
			Name:      token.User.Metadata.FullName,
			AvatarURL: token.User.Metadata.AvatarURL,
			Role:      token.User.Role,
		},
		CreatedAt: now,
	}, nil
}

// getJSON performs a rate-limited GET against the REST API and decodes
// the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	c.setAuthHeaders(req)

	logger.Debug("GET %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// setAuthHeaders adds the Supabase API key headers.
func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
}

// checkStatus maps HTTP error responses to domain errors.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, strings.TrimSpace(string(body)))
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuthInvalid, strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrRemoteUnavailable,
			resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
