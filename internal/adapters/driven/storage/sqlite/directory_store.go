package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// ==================== University Store ====================

// universityStore implements driven.UniversityStore.
type universityStore struct {
	store *Store
}

var _ driven.UniversityStore = (*universityStore)(nil)

// List returns all cached universities in insertion order.
func (s *universityStore) List(ctx context.Context) ([]domain.University, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, short_name, city, category, address, phone, email,
		       website, logo_url, founded_year, ranking, updated_at
		FROM universities
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying universities: %w", err)
	}
	defer rows.Close()

	var records []domain.University
	for rows.Next() {
		record, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get retrieves a university by ID.
func (s *universityStore) Get(ctx context.Context, id string) (domain.University, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, short_name, city, category, address, phone, email,
		       website, logo_url, founded_year, ranking, updated_at
		FROM universities
		WHERE id = ?
	`, id)

	record, err := scanUniversity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.University{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.University{}, err
	}
	return record, nil
}

// ReplaceAll atomically replaces the cached set.
func (s *universityStore) ReplaceAll(ctx context.Context, records []domain.University, refreshedAt time.Time) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM universities"); err != nil {
		return fmt.Errorf("clearing universities: %w", err)
	}

	for i, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO universities (id, position, name, short_name, city, category,
				address, phone, email, website, logo_url, founded_year, ranking, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, i, r.Name, r.ShortName, r.City, string(r.Category),
			r.Address, r.Phone, r.Email, r.Website, r.LogoURL,
			r.FoundedYear, r.Ranking, nullTime(r.UpdatedAt))
		if err != nil {
			return fmt.Errorf("inserting university %s: %w", r.ID, err)
		}
	}

	if err := recordRefresh(ctx, tx, "universities", refreshedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RefreshedAt returns when the cached set was last replaced.
func (s *universityStore) RefreshedAt(ctx context.Context) (time.Time, error) {
	return refreshedAt(ctx, s.store.db, "universities")
}

// ==================== Scholarship Store ====================

// scholarshipStore implements driven.ScholarshipStore.
type scholarshipStore struct {
	store *Store
}

var _ driven.ScholarshipStore = (*scholarshipStore)(nil)

// List returns all cached scholarships in insertion order.
func (s *scholarshipStore) List(ctx context.Context) ([]domain.Scholarship, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, provider, level, city, amount, deadline, url,
		       description, updated_at
		FROM scholarships
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying scholarships: %w", err)
	}
	defer rows.Close()

	var records []domain.Scholarship
	for rows.Next() {
		record, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get retrieves a scholarship by ID.
func (s *scholarshipStore) Get(ctx context.Context, id string) (domain.Scholarship, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, provider, level, city, amount, deadline, url,
		       description, updated_at
		FROM scholarships
		WHERE id = ?
	`, id)

	record, err := scanScholarship(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Scholarship{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Scholarship{}, err
	}
	return record, nil
}

// ReplaceAll atomically replaces the cached set.
func (s *scholarshipStore) ReplaceAll(ctx context.Context, records []domain.Scholarship, refreshedAt time.Time) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM scholarships"); err != nil {
		return fmt.Errorf("clearing scholarships: %w", err)
	}

	for i, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO scholarships (id, position, title, provider, level, city,
				amount, deadline, url, description, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, i, r.Title, r.Provider, string(r.Level), r.City,
			r.Amount, r.Deadline, r.URL, r.Description, nullTime(r.UpdatedAt))
		if err != nil {
			return fmt.Errorf("inserting scholarship %s: %w", r.ID, err)
		}
	}

	if err := recordRefresh(ctx, tx, "scholarships", refreshedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// RefreshedAt returns when the cached set was last replaced.
func (s *scholarshipStore) RefreshedAt(ctx context.Context) (time.Time, error) {
	return refreshedAt(ctx, s.store.db, "scholarships")
}

// ==================== Helpers ====================

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanUniversity(row scanner) (domain.University, error) {
	var r domain.University
	var category string
	var updatedAt sql.NullTime

	err := row.Scan(&r.ID, &r.Name, &r.ShortName, &r.City, &category,
		&r.Address, &r.Phone, &r.Email, &r.Website, &r.LogoURL,
		&r.FoundedYear, &r.Ranking, &updatedAt)
	if err != nil {
		return domain.University{}, err
	}

	r.Category = domain.Category(category)
	if updatedAt.Valid {
		r.UpdatedAt = updatedAt.Time
	}
	return r, nil
}

func scanScholarship(row scanner) (domain.Scholarship, error) {
	var r domain.Scholarship
	var level string
	var updatedAt sql.NullTime

	err := row.Scan(&r.ID, &r.Title, &r.Provider, &level, &r.City,
		&r.Amount, &r.Deadline, &r.URL, &r.Description, &updatedAt)
	if err != nil {
		return domain.Scholarship{}, err
	}

	r.Level = domain.ScholarshipLevel(level)
	if updatedAt.Valid {
		r.UpdatedAt = updatedAt.Time
	}
	return r, nil
}

// nullTime converts a zero time to NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

// recordRefresh stamps the refresh time for a collection inside tx.
func recordRefresh(ctx context.Context, tx *sql.Tx, collection string, refreshedAt time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO refresh_log (collection, refreshed_at)
		VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET refreshed_at = excluded.refreshed_at
	`, collection, refreshedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording refresh for %s: %w", collection, err)
	}
	return nil
}

// refreshedAt reads the refresh stamp for a collection. Returns the
// zero time when the collection was never refreshed.
func refreshedAt(ctx context.Context, db *sql.DB, collection string) (time.Time, error) {
	var stamp time.Time
	row := db.QueryRowContext(ctx,
		"SELECT refreshed_at FROM refresh_log WHERE collection = ?", collection)
	err := row.Scan(&stamp)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading refresh stamp for %s: %w", collection, err)
	}
	return stamp, nil
}
