package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sneha-8765/task-manager/internal/auth"
	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/dto"
	"github.com/Sneha-8765/task-manager/internal/seed"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login and demo-data reset against the
// local store. Password checks are exact plaintext comparisons; this is a
// demo backend and makes no pretense of real authentication.
type AuthService struct {
	store    *storage.Store
	signKey  []byte
	tokenTTL time.Duration
	now      func() time.Time
	ids      *idGen
}

// NewAuthService returns an AuthService. A nil now clock means time.Now.
func NewAuthService(store *storage.Store, signKey []byte, tokenTTL time.Duration, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:    store,
		signKey:  signKey,
		tokenTTL: tokenTTL,
		now:      now,
		ids:      newIDGen(now),
	}
}

// Register creates a new account. Fails with ErrUserExists when a stored
// user already has the given username or email; the failed attempt leaves
// the collection untouched.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (domain.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	users := s.store.Users()
	for i := range users {
		if users[i].Username == username || users[i].Email == email {
			return domain.User{}, "", ErrUserExists
		}
	}

	u := domain.User{
		ID:        s.ids.next(),
		Username:  username,
		Email:     email,
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		JoinDate:  s.now().UTC(),
	}
	s.store.SaveUsers(append(users, u))

	token, err := auth.Mint(u.ID, s.signKey, s.tokenTTL, s.now())
	if err != nil {
		return domain.User{}, "", err
	}
	return u, token, nil
}

// Login finds a user whose username and password both match exactly. No
// side effect on failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	for _, u := range s.store.Users() {
		if u.Username == username && u.Password == password {
			token, err := auth.Mint(u.ID, s.signKey, s.tokenTTL, s.now())
			if err != nil {
				return domain.User{}, "", err
			}
			return u, token, nil
		}
	}
	return domain.User{}, "", ErrInvalidCredentials
}

// ResetDemoData clears both stored collections, re-runs the seeder and
// returns the canonical demo credentials.
func (s *AuthService) ResetDemoData(ctx context.Context) []dto.Credential {
	s.store.Reset()
	seed.Ensure(s.store)
	return seed.Credentials()
}
