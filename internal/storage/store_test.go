package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sneha-8765/task-manager/internal/domain"
)

func TestStore_UsersRoundTrip(t *testing.T) {
	st := New(NewMemoryKV(), nil)

	users := []domain.User{
		{ID: "1", Username: "mike", Email: "mike@example.com", Password: "password123",
			FirstName: "Mike", LastName: "Johnson", JoinDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	st.SaveUsers(users)
	require.Equal(t, users, st.Users())
}

func TestStore_TasksRoundTrip(t *testing.T) {
	st := New(NewMemoryKV(), nil)

	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{
			ID: "10", Title: "with due date", Description: "d",
			Status: domain.StatusPending, Priority: domain.PriorityHigh,
			DueDate:   &due,
			CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			UserID:    "1", Tags: []string{"a", "b", "a"},
		},
		{
			ID: "11", Title: "without due date", Description: "",
			Status: domain.StatusCompleted, Priority: domain.PriorityLow,
			CreatedAt: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
			UserID:    "2", Tags: []string{},
		},
	}
	st.SaveTasks(tasks)
	require.Equal(t, tasks, st.Tasks())
}

func TestStore_EmptyAndCorruptBlobs(t *testing.T) {
	kv := NewMemoryKV()
	st := New(kv, nil)

	// Absent blobs come back as empty collections, never nil, never panic.
	require.Empty(t, st.Users())
	require.NotNil(t, st.Users())
	require.Empty(t, st.Tasks())
	require.NotNil(t, st.Tasks())

	// Corrupt blobs behave the same.
	kv.Set("mockUsers", "{broken")
	kv.Set("mockTasks", "[42]")
	require.Empty(t, st.Users())
	require.Empty(t, st.Tasks())
}

func TestStore_Token(t *testing.T) {
	st := New(NewMemoryKV(), nil)

	require.Equal(t, "", st.Token())
	st.SetToken("tok-123")
	require.Equal(t, "tok-123", st.Token())
	st.RemoveToken()
	require.Equal(t, "", st.Token())
}

func TestStore_ResetKeepsToken(t *testing.T) {
	st := New(NewMemoryKV(), nil)
	st.SaveUsers([]domain.User{{ID: "1", Username: "mike"}})
	st.SaveTasks([]domain.Task{{ID: "1", Title: "x", Tags: []string{}}})
	st.SetToken("tok")

	st.Reset()

	require.Empty(t, st.Users())
	require.Empty(t, st.Tasks())
	require.Equal(t, "tok", st.Token())
}
