package domain

import "time"

// UserProfile is the signed-in user's basic profile as reported by the
// identity provider.
type UserProfile struct {
	// ID is the provider-assigned user identifier.
	ID string `json:"id"`

	// Email is the account email address.
	Email string `json:"email"`

	// Name is the display name, if provided.
	Name string `json:"name,omitempty"`

	// AvatarURL points at the profile picture, if provided.
	AvatarURL string `json:"avatar_url,omitempty"`

	// Role is the application role, e.g. "user" or "admin".
	Role string `json:"role,omitempty"`
}

// IsAdmin returns true if the user may use admin operations.
func (u UserProfile) IsAdmin() bool {
	return u.Role == "admin"
}

// Session holds the tokens for a signed-in user.
type Session struct {
	// ID is the unique identifier for the stored session.
	ID string

	// AccessToken is the bearer token for API calls.
	AccessToken string

	// RefreshToken renews the access token when it expires.
	RefreshToken string

	// ExpiresAt is when the access token expires.
	ExpiresAt time.Time

	// User is the profile of the session owner.
	User UserProfile

	// CreatedAt is when the session was established.
	CreatedAt time.Time
}

// Expired returns true if the access token has expired.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
