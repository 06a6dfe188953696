package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Sneha-8765/task-manager/internal/domain"
)

// DueDate parses dueDate from JSON as either date-only ("2006-01-02") or an
// RFC3339 datetime. Date-only is stored as start of that day in UTC.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("dueDate: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns the parsed time, or nil if dueDate was absent or empty.
func (d DueDate) Ptr() *time.Time { return d.t }

// CreateTaskRequest is the JSON body for POST /api/tasks. The userId field
// is optional; the service falls back to the default demo owner.
type CreateTaskRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Status      domain.Status   `json:"status" binding:"required,oneof=pending in-progress completed"`
	Priority    domain.Priority `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     DueDate         `json:"dueDate"`
	Tags        []string        `json:"tags"`
	UserID      string          `json:"userId"`
}

// UpdateTaskRequest is the JSON body for PUT /api/tasks/:id. Every mutable
// task attribute is an explicit optional field; nil means "leave unchanged".
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *domain.Status   `json:"status"`
	Priority    *domain.Priority `json:"priority"`
	DueDate     *DueDate         `json:"dueDate"`
	Tags        *[]string        `json:"tags"`
}

// DecodeUpdateTask reads an UpdateTaskRequest from r, rejecting unknown
// fields so arbitrary payload shapes are not silently accepted.
func DecodeUpdateTask(r io.Reader) (UpdateTaskRequest, error) {
	var req UpdateTaskRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return UpdateTaskRequest{}, err
	}
	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return UpdateTaskRequest{}, fmt.Errorf("status: must be pending, in-progress or completed")
	}
	if req.Priority != nil && !domain.ValidPriority(*req.Priority) {
		return UpdateTaskRequest{}, fmt.Errorf("priority: must be low, medium or high")
	}
	return req, nil
}
