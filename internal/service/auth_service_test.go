package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sneha-8765/task-manager/internal/auth"
	"github.com/Sneha-8765/task-manager/internal/dto"
	"github.com/Sneha-8765/task-manager/internal/seed"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

var testKey = []byte("test-sign-key")

func newAuthService(t *testing.T) (*AuthService, *storage.Store) {
	t.Helper()
	st := storage.New(storage.NewMemoryKV(), nil)
	seed.Ensure(st)
	return NewAuthService(st, testKey, time.Hour, nil), st
}

func registerReq(username, email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "secret",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, st := newAuthService(t)

	u, token, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.NotEmpty(t, token)
	require.False(t, u.JoinDate.IsZero())

	// Token subject is the new user's id.
	sub, err := auth.Subject(token, testKey)
	require.NoError(t, err)
	require.Equal(t, u.ID, sub)

	// The id is unique across the stored collection.
	seen := map[string]int{}
	for _, stored := range st.Users() {
		seen[stored.ID]++
	}
	require.Equal(t, 1, seen[u.ID])
	require.Len(t, st.Users(), 4)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, st := newAuthService(t)

	_, _, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"))
	require.NoError(t, err)
	before := st.Users()

	_, _, err = svc.Register(context.Background(), registerReq("alice", "other@example.com"))
	require.ErrorIs(t, err, ErrUserExists)
	require.Equal(t, before, st.Users())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(context.Background(), registerReq("alice", "mike@example.com"))
	require.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_DemoCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct{ username, password string }{
		{"mike", "password123"},
		{"sarah", "password123"},
		{"demo", "demo123"},
	}
	for _, tc := range cases {
		u, token, err := svc.Login(context.Background(), tc.username, tc.password)
		require.NoError(t, err, tc.username)
		require.Equal(t, tc.username, u.Username)
		require.NotEmpty(t, token)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, st := newAuthService(t)
	before := st.Users()

	_, _, err := svc.Login(context.Background(), "mike", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// No side effect on failure.
	require.Equal(t, before, st.Users())
}

func TestResetDemoData(t *testing.T) {
	svc, st := newAuthService(t)

	// Dirty both collections.
	_, _, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"))
	require.NoError(t, err)
	users := st.Users()
	users[0].Password = "edited"
	st.SaveUsers(users)

	creds := svc.ResetDemoData(context.Background())

	require.Len(t, creds, 3)
	require.Equal(t, "mike", creds[0].Username)
	require.Len(t, st.Users(), 3)
	require.Len(t, st.Tasks(), 3)

	// Canonical credentials work again.
	_, _, err = svc.Login(context.Background(), "mike", "password123")
	require.NoError(t, err)
}
