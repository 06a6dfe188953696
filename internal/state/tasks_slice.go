package state

import "github.com/Sneha-8765/task-manager/internal/domain"

// TasksSlice holds the task collection for the active session. The list is
// replaced wholesale after a fetch, patched by id after an update and
// shrunk by id after a delete. Loading and Err exist for a future real
// network; the mock layer never sets them.
type TasksSlice struct {
	tasks   []domain.Task
	loading bool
	err     string
}

// NewTasksSlice returns an empty slice.
func NewTasksSlice() *TasksSlice {
	return &TasksSlice{tasks: []domain.Task{}}
}

// SetTasks replaces the whole collection with a fetch result.
func (s *TasksSlice) SetTasks(tasks []domain.Task) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	s.tasks = tasks
	s.err = ""
}

// ReplaceTask swaps in the updated record by id. Unknown ids are ignored.
func (s *TasksSlice) ReplaceTask(t domain.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
}

// RemoveTask drops the record with the given id, if present.
func (s *TasksSlice) RemoveTask(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Tasks returns the current collection.
func (s *TasksSlice) Tasks() []domain.Task {
	return s.tasks
}

// SetLoading flips the loading flag.
func (s *TasksSlice) SetLoading(v bool) {
	s.loading = v
}

// Loading reports whether a fetch is in flight.
func (s *TasksSlice) Loading() bool {
	return s.loading
}

// SetError records a fetch failure message.
func (s *TasksSlice) SetError(msg string) {
	s.err = msg
}

// Err returns the last recorded error message, or "".
func (s *TasksSlice) Err() string {
	return s.err
}
