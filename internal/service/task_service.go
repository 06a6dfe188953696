package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/dto"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

var ErrNotFound = errors.New("task not found")

// defaultOwner owns tasks created without an explicit userId, matching the
// first seeded demo account.
const defaultOwner = "1"

// TaskService implements task CRUD and dashboard aggregation over the
// local store. Every call reads the whole collection, applies the change
// and writes it back; within one call nothing else can interleave.
type TaskService struct {
	store *storage.Store
	now   func() time.Time
	ids   *idGen
}

// NewTaskService returns a TaskService. A nil now clock means time.Now.
func NewTaskService(store *storage.Store, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{store: store, now: now, ids: newIDGen(now)}
}

// List returns the tasks owned by userID. The id is not validated against
// the user collection; an unknown owner simply yields an empty list.
func (s *TaskService) List(ctx context.Context, userID string) []domain.Task {
	out := []domain.Task{}
	for _, t := range s.store.Tasks() {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// Create appends a new task with a fresh id and createdAt == updatedAt.
// Tags default to an empty slice, the owner to the default demo user.
func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) domain.Task {
	now := s.now().UTC()
	t := domain.Task{
		ID:          s.ids.next(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate.Ptr(),
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      req.UserID,
		Tags:        req.Tags,
	}
	if t.UserID == "" {
		t.UserID = defaultOwner
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	tasks := s.store.Tasks()
	s.store.SaveTasks(append(tasks, t))
	return t
}

// Update shallow-merges the set fields of req onto the stored task and
// stamps updatedAt. Returns ErrNotFound when no task has the given id.
func (s *TaskService) Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (domain.Task, error) {
	tasks := s.store.Tasks()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		t := &tasks[i]
		if req.Title != nil {
			t.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			t.Description = strings.TrimSpace(*req.Description)
		}
		if req.Status != nil {
			t.Status = *req.Status
		}
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.DueDate != nil {
			t.DueDate = req.DueDate.Ptr()
		}
		if req.Tags != nil {
			t.Tags = *req.Tags
			if t.Tags == nil {
				t.Tags = []string{}
			}
		}
		t.UpdatedAt = s.now().UTC()
		s.store.SaveTasks(tasks)
		return *t, nil
	}
	return domain.Task{}, ErrNotFound
}

// Delete removes the task with the given id. Deleting an absent id is not
// an error; the call is idempotent.
func (s *TaskService) Delete(ctx context.Context, id string) {
	tasks := s.store.Tasks()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return
	}
	s.store.SaveTasks(kept)
}

// Stats aggregates the user's tasks for the dashboard. Recomputed on every
// call; nothing is cached.
func (s *TaskService) Stats(ctx context.Context, userID string) domain.DashboardStats {
	var stats domain.DashboardStats
	for _, t := range s.store.Tasks() {
		if t.UserID != userID {
			continue
		}
		stats.TotalTasks++
		switch t.Status {
		case domain.StatusPending:
			stats.PendingTasks++
		case domain.StatusInProgress:
			stats.InProgressTasks++
		case domain.StatusCompleted:
			stats.CompletedTasks++
		}
		if t.Priority == domain.PriorityHigh {
			stats.HighPriorityTasks++
		}
	}
	return stats
}
