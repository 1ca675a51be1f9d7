package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// favouriteStore implements driven.FavouriteStore.
type favouriteStore struct {
	store *Store
}

var _ driven.FavouriteStore = (*favouriteStore)(nil)

// List returns all favourites, newest first.
func (s *favouriteStore) List(ctx context.Context) ([]domain.Favourite, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, record_id, record_type, created_at
		FROM favourites
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying favourites: %w", err)
	}
	defer rows.Close()

	var favs []domain.Favourite
	for rows.Next() {
		var f domain.Favourite
		var recordType string
		if err := rows.Scan(&f.ID, &f.RecordID, &recordType, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favourite: %w", err)
		}
		f.Type = domain.RecordType(recordType)
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

// Add saves a favourite.
func (s *favouriteStore) Add(ctx context.Context, fav domain.Favourite) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO favourites (id, record_id, record_type, created_at)
		VALUES (?, ?, ?, ?)
	`, fav.ID, fav.RecordID, string(fav.Type), fav.CreatedAt.UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("inserting favourite: %w", err)
	}
	return nil
}

// Remove deletes the favourite for the given record.
func (s *favouriteStore) Remove(ctx context.Context, recordID string, recordType domain.RecordType) error {
	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM favourites WHERE record_id = ? AND record_type = ?
	`, recordID, string(recordType))
	if err != nil {
		return fmt.Errorf("deleting favourite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists reports whether the given record is favourited.
func (s *favouriteStore) Exists(ctx context.Context, recordID string, recordType domain.RecordType) (bool, error) {
	var one int
	row := s.store.db.QueryRowContext(ctx, `
		SELECT 1 FROM favourites WHERE record_id = ? AND record_type = ?
	`, recordID, string(recordType))
	err := row.Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking favourite: %w", err)
	}
	return true, nil
}
