// Package session keeps the access token and the authenticated user for the running client.
package session

import (
	"sync"

	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

var (
	_ datasources.CurrentUserIDGetter = (*Session)(nil)
	_ datasources.AccessTokenGetter   = (*Session)(nil)
	_ datasources.SessionWriter       = (*Session)(nil)
)

type Session struct {
	mu       sync.RWMutex
	token    string
	authUser *domain.User
}

// New creates a session, optionally seeded with an access token from a previous login.
func New(initialToken string) *Session {
	return &Session{token: initialToken}
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) SetAuthUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authUser = &user
}

// AuthUser returns the authenticated user, if any.
func (s *Session) AuthUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.authUser == nil {
		return domain.User{}, false
	}
	return *s.authUser, true
}

func (s *Session) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.authUser == nil {
		return ""
	}
	return s.authUser.ID
}

// Clear forgets the token and the user.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.authUser = nil
}
