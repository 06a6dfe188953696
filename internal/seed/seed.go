// Package seed guarantees baseline demo data before first use: a fixed set
// of demo accounts and, on a completely empty task collection, a handful of
// example tasks.
package seed

import (
	"time"

	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/dto"
	"github.com/Sneha-8765/task-manager/internal/storage"
)

// Canonical demo accounts. Seeding never overwrites a stored account with
// the same username, so local edits (e.g. a changed password) survive
// restarts; reset-demo-data is the way back to these credentials.
var demoUsers = []domain.User{
	{ID: "1", Username: "mike", Email: "mike@example.com", Password: "password123", FirstName: "Mike", LastName: "Johnson"},
	{ID: "2", Username: "sarah", Email: "sarah@example.com", Password: "password123", FirstName: "Sarah", LastName: "Wilson"},
	{ID: "3", Username: "demo", Email: "demo@example.com", Password: "demo123", FirstName: "Demo", LastName: "User"},
}

func defaultTasks() []domain.Task {
	due1 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID:          "1",
			Title:       "Complete project proposal",
			Description: "Write and review the project proposal document for client presentation",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityHigh,
			DueDate:     &due1,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			UserID:      "1",
			Tags:        []string{"work", "urgent"},
		},
		{
			ID:          "2",
			Title:       "Design user interface",
			Description: "Create wireframes and mockups for the new dashboard design",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			DueDate:     &due2,
			CreatedAt:   time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC),
			UserID:      "1",
			Tags:        []string{"design", "ui/ux"},
		},
		{
			ID:          "3",
			Title:       "Set up development environment",
			Description: "Install and configure all necessary tools and dependencies",
			Status:      domain.StatusPending,
			Priority:    domain.PriorityMedium,
			CreatedAt:   time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
			UserID:      "1",
			Tags:        []string{"development", "setup"},
		},
	}
}

// Ensure appends each demo account whose username is not yet stored and,
// when the task collection is empty, seeds the example tasks. Repeated
// calls are no-ops.
func Ensure(st *storage.Store) {
	users := st.Users()
	missing := false
	for _, du := range demoUsers {
		if hasUsername(users, du.Username) {
			continue
		}
		du.JoinDate = time.Now().UTC()
		users = append(users, du)
		missing = true
	}
	if missing {
		st.SaveUsers(users)
	}

	if len(st.Tasks()) == 0 {
		st.SaveTasks(defaultTasks())
	}
}

// Credentials lists the canonical demo username/password pairs.
func Credentials() []dto.Credential {
	creds := make([]dto.Credential, len(demoUsers))
	for i, u := range demoUsers {
		creds[i] = dto.Credential{Username: u.Username, Password: u.Password}
	}
	return creds
}

func hasUsername(users []domain.User, username string) bool {
	for i := range users {
		if users[i].Username == username {
			return true
		}
	}
	return false
}
