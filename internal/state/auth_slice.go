// Package state holds the client-side view of the application: small
// reducer-style slices fed exclusively by completed API responses. The
// slices mirror durable state, never the other way around. They are not
// safe for concurrent use; the UI runs a single event loop.
package state

import (
	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

// AuthSlice holds the authenticated user and token. The token is also
// persisted through the store so a restart can rehydrate the session.
type AuthSlice struct {
	store *storage.Store
	user  *domain.User
	token string
}

// NewAuthSlice rehydrates the token from the store; the user record stays
// nil until the next successful login.
func NewAuthSlice(store *storage.Store) *AuthSlice {
	return &AuthSlice{store: store, token: store.Token()}
}

// LoginSuccess records a successful login or registration response.
func (s *AuthSlice) LoginSuccess(user domain.User, token string) {
	u := user
	s.user = &u
	s.token = token
	s.store.SetToken(token)
}

// Logout clears the session and removes the persisted token.
func (s *AuthSlice) Logout() {
	s.user = nil
	s.token = ""
	s.store.RemoveToken()
}

// SetUser replaces the user record without touching token or auth status,
// for profile-refresh flows.
func (s *AuthSlice) SetUser(user domain.User) {
	u := user
	s.user = &u
}

// User returns the current user, or nil when anonymous.
func (s *AuthSlice) User() *domain.User {
	return s.user
}

// Token returns the current bearer token, or "".
func (s *AuthSlice) Token() string {
	return s.token
}

// Authenticated derives the auth flag from token presence.
func (s *AuthSlice) Authenticated() bool {
	return s.token != ""
}
