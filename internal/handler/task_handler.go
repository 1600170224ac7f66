package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

type TaskService interface {
	AddTask(ctx context.Context, boardID, columnID string, fields model.TaskFields) (*model.Task, store.Outcome, error)
	UpdateTask(ctx context.Context, boardID, taskID string, patch model.TaskPatch) (store.Outcome, error)
	DeleteTask(ctx context.Context, boardID, taskID string) (store.Outcome, error)
	ToggleComplete(ctx context.Context, boardID, taskID string) (store.Outcome, error)
	MoveTask(ctx context.Context, boardID, taskID, sourceColumnID, destColumnID string, index int) (store.Outcome, error)
}

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTaskRequest is the body of a task creation
type CreateTaskRequest struct {
	ColumnID    string          `json:"columnId" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	Assignee    *string         `json:"assignee"`
	Priority    *model.Priority `json:"priority"`
	DueDate     *string         `json:"dueDate"`
	Completed   *bool           `json:"completed"`
}

// MoveTaskRequest carries an already adjusted destination index
type MoveTaskRequest struct {
	SourceColumnID string `json:"sourceColumnId" binding:"required"`
	DestColumnID   string `json:"destColumnId" binding:"required"`
	Index          *int   `json:"index" binding:"required"`
}

// Create adds a task at the end of a column
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	task, out, err := h.tasks.AddTask(c.Request.Context(), c.Param("id"), req.ColumnID, model.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}
	if task == nil {
		c.JSON(http.StatusOK, OutcomeResponse{Outcome: out})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update merges the given fields into a task
func (h *TaskHandler) Update(c *gin.Context) {
	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		return
	}
	if patch.Priority != nil && *patch.Priority != "" && !patch.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	out, err := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("task_id"), patch)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, OutcomeResponse{Outcome: out})
}

// Delete removes a task from the board
func (h *TaskHandler) Delete(c *gin.Context) {
	out, err := h.tasks.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("task_id"))
	if err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, OutcomeResponse{Outcome: out})
}

// Toggle flips the completed flag of a task
func (h *TaskHandler) Toggle(c *gin.Context) {
	out, err := h.tasks.ToggleComplete(c.Request.Context(), c.Param("id"), c.Param("task_id"))
	if err != nil {
		respondError(c, err, "Failed to toggle task")
		return
	}

	c.JSON(http.StatusOK, OutcomeResponse{Outcome: out})
}

// Move places a task at an index of a column
func (h *TaskHandler) Move(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	out, err := h.tasks.MoveTask(c.Request.Context(), c.Param("id"), c.Param("task_id"), req.SourceColumnID, req.DestColumnID, *req.Index)
	if err != nil {
		respondError(c, err, "Failed to move task")
		return
	}

	c.JSON(http.StatusOK, OutcomeResponse{Outcome: out})
}
