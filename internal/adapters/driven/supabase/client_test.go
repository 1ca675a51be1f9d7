package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(domain.RemoteSettings{URL: server.URL, AnonKey: "test-anon-key"})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresConfiguration(t *testing.T) {
	_, err := NewClient(domain.RemoteSettings{})
	assert.ErrorIs(t, err, domain.ErrRemoteNotConfigured)

	_, err = NewClient(domain.RemoteSettings{URL: "https://abc.supabase.co"})
	assert.ErrorIs(t, err, domain.ErrRemoteNotConfigured)
}

func TestClient_ListUniversities(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/universities", r.URL.Path)
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]domain.University{
			{ID: "nust", Name: "NUST", ShortName: "NUST", City: "Islamabad", Category: domain.CategoryPublic},
			{ID: "lums", Name: "LUMS", ShortName: "LUMS", City: "Lahore", Category: domain.CategoryPrivate},
		})
	})

	records, err := client.ListUniversities(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "nust", records[0].ID)
	assert.Equal(t, domain.CategoryPublic, records[0].Category)
}

func TestClient_ListScholarships(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/scholarships", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.Scholarship{
			{ID: "ehsaas", Title: "Ehsaas", Provider: "HEC", Level: domain.LevelUndergraduate},
		})
	})

	records, err := client.ListScholarships(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "HEC", records[0].Provider)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"rate limited", http.StatusTooManyRequests, domain.ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthInvalid},
		{"forbidden", http.StatusForbidden, domain.ErrAuthInvalid},
		{"server error", http.StatusNotFound, domain.ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.ListUniversities(context.Background())
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClient_ExchangeGoogleToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "id_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google", body["provider"])
		assert.Equal(t, "google-id-token", body["id_token"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "access",
			"refresh_token": "refresh",
			"expires_in": 3600,
			"user": {
				"id": "user-1",
				"email": "student@example.pk",
				"role": "authenticated",
				"user_metadata": {"full_name": "Student", "avatar_url": "https://example.com/a.png"}
			}
		}`))
	})

	session, err := client.ExchangeGoogleToken(context.Background(), "google-id-token")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.False(t, session.Expired())
	assert.Equal(t, "student@example.pk", session.User.Email)
	assert.Equal(t, "Student", session.User.Name)
	assert.Equal(t, "authenticated", session.User.Role)
}

func TestClient_ExchangeGoogleTokenRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid id_token"}`))
	})

	_, err := client.ExchangeGoogleToken(context.Background(), "bad-token")
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}
