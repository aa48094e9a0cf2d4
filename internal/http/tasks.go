package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
)

const cleanupAuditEventsTask = "cleanup_audit_events"

// TasksController handles task queue endpoints.
type TasksController struct {
	status  TaskStatusReader
	cleanup CleanupRunner
}

// NewTasksController creates a new TasksController. cleanup may be nil
// when the scheduler is disabled.
func NewTasksController(status TaskStatusReader, cleanup CleanupRunner) *TasksController {
	return &TasksController{status: status, cleanup: cleanup}
}

// GetTaskStatus handles GET /api/tasks/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.status.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTask handles POST /api/tasks/:type/run
// Manually triggers a task of the specified type.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")
	if taskType != cleanupAuditEventsTask || tc.cleanup == nil {
		respondBadRequest(c, "unknown task type: "+taskType)
		return
	}

	id, err := tc.cleanup.RunNow(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "run task")
		return
	}

	respondAccepted(c, "task enqueued", gin.H{
		"task_id": id,
		"type":    taskType,
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
