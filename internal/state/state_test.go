package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

func TestAuthSlice_LoginLogout(t *testing.T) {
	st := storage.New(storage.NewMemoryKV(), nil)
	s := NewAuthSlice(st)

	require.False(t, s.Authenticated())
	require.Nil(t, s.User())

	s.LoginSuccess(domain.User{ID: "1", Username: "mike"}, "tok-1")
	require.True(t, s.Authenticated())
	require.Equal(t, "mike", s.User().Username)
	require.Equal(t, "tok-1", st.Token()) // persisted outside the slice

	s.Logout()
	require.False(t, s.Authenticated())
	require.Nil(t, s.User())
	require.Equal(t, "", st.Token())
}

func TestAuthSlice_RehydratesToken(t *testing.T) {
	st := storage.New(storage.NewMemoryKV(), nil)
	st.SetToken("persisted")

	s := NewAuthSlice(st)
	require.True(t, s.Authenticated())
	require.Equal(t, "persisted", s.Token())
	require.Nil(t, s.User()) // user record is not persisted, only the token
}

func TestAuthSlice_SetUser(t *testing.T) {
	st := storage.New(storage.NewMemoryKV(), nil)
	s := NewAuthSlice(st)
	s.LoginSuccess(domain.User{ID: "1", Username: "mike"}, "tok")

	s.SetUser(domain.User{ID: "1", Username: "mike", FirstName: "Michael"})

	require.Equal(t, "Michael", s.User().FirstName)
	require.Equal(t, "tok", s.Token()) // token and flag untouched
	require.True(t, s.Authenticated())
}

func tasksFixture() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "one", Tags: []string{}},
		{ID: "2", Title: "two", Tags: []string{}},
	}
}

func TestTasksSlice_SetReplaceRemove(t *testing.T) {
	s := NewTasksSlice()
	require.NotNil(t, s.Tasks())
	require.Empty(t, s.Tasks())

	s.SetTasks(tasksFixture())
	require.Len(t, s.Tasks(), 2)

	s.ReplaceTask(domain.Task{ID: "2", Title: "two updated", Tags: []string{}})
	require.Equal(t, "two updated", s.Tasks()[1].Title)

	// Replacing an unknown id changes nothing.
	s.ReplaceTask(domain.Task{ID: "99", Title: "ghost"})
	require.Len(t, s.Tasks(), 2)

	s.RemoveTask("1")
	require.Len(t, s.Tasks(), 1)
	require.Equal(t, "2", s.Tasks()[0].ID)

	s.RemoveTask("1") // already gone
	require.Len(t, s.Tasks(), 1)
}

func TestTasksSlice_LoadingAndError(t *testing.T) {
	s := NewTasksSlice()

	s.SetLoading(true)
	require.True(t, s.Loading())

	s.SetError("network down")
	require.Equal(t, "network down", s.Err())

	// A successful fetch clears the error.
	s.SetTasks(tasksFixture())
	require.Equal(t, "", s.Err())
}
