package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha-8765/task-manager/internal/dto"
	"github.com/Sneha-8765/task-manager/internal/service"
)

// TaskHandler exposes the task CRUD and dashboard endpoints.
type TaskHandler struct {
	svc *service.TaskService
}

// NewTaskHandler returns a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List handles GET /api/tasks?userId=.
func (h *TaskHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), userID))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.Create(c.Request.Context(), req))
}

// Update handles PUT /api/tasks/:id. The body is a typed partial update;
// unknown fields are rejected rather than silently merged.
func (h *TaskHandler) Update(c *gin.Context) {
	req, err := dto.DecodeUpdateTask(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tasks/:id. Idempotent; an absent id still
// acknowledges success.
func (h *TaskHandler) Delete(c *gin.Context) {
	h.svc.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats handles GET /api/dashboard/stats?userId=.
func (h *TaskHandler) Stats(c *gin.Context) {
	userID := c.Query("userId")
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context(), userID))
}
