package session

import (
	"sync"

	"course-dash/internal/domain"
)

// Store holds the current credential token and authenticated profile.
// It is the single source of truth for "is the user authenticated" and
// "who are they". In-memory only: nothing survives a process restart.
//
// Every transition that invalidates the session (clearing the token) bumps a
// generation counter. Callers snapshot the generation before starting an
// async fetch and compare it before applying the result, so a late response
// from a superseded session is discarded instead of resurrecting it.
type Store struct {
	mu    sync.Mutex
	token string
	user  *domain.UserProfile
	gen   uint64
}

func New() *Store {
	return &Store{}
}

// SetToken replaces the stored token. Clearing it (empty string) also clears
// the dependent profile and invalidates any in-flight fetches.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if token == "" {
		s.user = nil
		s.gen++
	}
}

// Token returns the stored token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetUser stores the fetched profile. A profile without a token makes no
// sense, so setting one while logged out is ignored.
func (s *Store) SetUser(user *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user != nil && s.token == "" {
		return
	}
	s.user = user
}

// User returns the stored profile, or nil when not authenticated.
func (s *Store) User() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Clear drops token and profile in one step (logout, auth failure).
func (s *Store) Clear() {
	s.SetToken("")
}

// Generation returns the current session generation. It moves every time
// the token is cleared.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
