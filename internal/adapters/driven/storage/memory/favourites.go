package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
	"github.com/pakuni-pk/pakuni-cli/internal/core/ports/driven"
)

// Ensure FavouriteStore implements the interface.
var _ driven.FavouriteStore = (*FavouriteStore)(nil)

// FavouriteStore is an in-memory implementation of
// driven.FavouriteStore.
type FavouriteStore struct {
	mu         sync.RWMutex
	favourites map[string]domain.Favourite
}

// NewFavouriteStore creates a new in-memory favourite store.
func NewFavouriteStore() *FavouriteStore {
	return &FavouriteStore{favourites: make(map[string]domain.Favourite)}
}

func favouriteKey(recordID string, recordType domain.RecordType) string {
	return string(recordType) + ":" + recordID
}

// List returns all favourites, newest first.
func (s *FavouriteStore) List(_ context.Context) ([]domain.Favourite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Favourite, 0, len(s.favourites))
	for _, f := range s.favourites {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Add saves a favourite.
func (s *FavouriteStore) Add(_ context.Context, fav domain.Favourite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := favouriteKey(fav.RecordID, fav.Type)
	if _, ok := s.favourites[key]; ok {
		return domain.ErrAlreadyExists
	}
	s.favourites[key] = fav
	return nil
}

// Remove deletes the favourite for the given record.
func (s *FavouriteStore) Remove(_ context.Context, recordID string, recordType domain.RecordType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := favouriteKey(recordID, recordType)
	if _, ok := s.favourites[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.favourites, key)
	return nil
}

// Exists reports whether the given record is favourited.
func (s *FavouriteStore) Exists(_ context.Context, recordID string, recordType domain.RecordType) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favourites[favouriteKey(recordID, recordType)]
	return ok, nil
}

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the stored session.
func (s *SessionStore) Get(_ context.Context) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Session{}, domain.ErrNotSignedIn
	}
	return *s.session, nil
}

// Put replaces the stored session.
func (s *SessionStore) Put(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// Delete removes the stored session.
func (s *SessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
