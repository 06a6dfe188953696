package domain

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is a single task record. Tags keeps order and allows duplicates;
// it is always serialized as an array, never null.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      string     `json:"userId"`
	Tags        []string   `json:"tags"`
}

// DashboardStats aggregates a user's tasks for the dashboard view.
type DashboardStats struct {
	TotalTasks        int `json:"totalTasks"`
	PendingTasks      int `json:"pendingTasks"`
	InProgressTasks   int `json:"inProgressTasks"`
	CompletedTasks    int `json:"completedTasks"`
	HighPriorityTasks int `json:"highPriorityTasks"`
}
