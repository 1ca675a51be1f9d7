package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// sessionStore implements driven.SessionStore. At most one session row
// exists at a time.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Get returns the stored session.
func (s *sessionStore) Get(ctx context.Context) (domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, access_token, refresh_token, expires_at,
		       user_id, user_email, user_name, user_avatar, user_role, created_at
		FROM sessions
		LIMIT 1
	`)

	var session domain.Session
	err := row.Scan(&session.ID, &session.AccessToken, &session.RefreshToken,
		&session.ExpiresAt, &session.User.ID, &session.User.Email,
		&session.User.Name, &session.User.AvatarURL, &session.User.Role,
		&session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrNotSignedIn
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("scanning session: %w", err)
	}
	return session, nil
}

// Put replaces the stored session.
func (s *sessionStore) Put(ctx context.Context, session domain.Session) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, access_token, refresh_token, expires_at,
			user_id, user_email, user_name, user_avatar, user_role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, session.ID, session.AccessToken, session.RefreshToken, session.ExpiresAt.UTC(),
		session.User.ID, session.User.Email, session.User.Name,
		session.User.AvatarURL, session.User.Role, session.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Delete removes the stored session.
func (s *sessionStore) Delete(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
