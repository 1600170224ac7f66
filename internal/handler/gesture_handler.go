package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/reorder"
)

type GestureController interface {
	Load(ctx context.Context) error
	Start(taskID string) bool
	Hover(targetID string) bool
	End(ctx context.Context, targetID string) (reorder.Result, error)
	Cancel(ctx context.Context) error
	View() reorder.View
}

type GestureHandler struct {
	gestures GestureController
}

func NewGestureHandler(gestures GestureController) *GestureHandler {
	return &GestureHandler{gestures: gestures}
}

type GestureStartRequest struct {
	TaskID string `json:"taskId" binding:"required"`
}

type GestureHoverRequest struct {
	TargetID string `json:"targetId" binding:"required"`
}

// GestureEndRequest has no target when the task was dropped outside any column
type GestureEndRequest struct {
	TargetID *string `json:"targetId"`
}

// Start begins dragging a task of the displayed board
func (h *GestureHandler) Start(c *gin.Context) {
	var req GestureStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// A gesture always starts from durable state
	if err := h.gestures.Load(c.Request.Context()); err != nil {
		h.loadFailed(c, err)
		return
	}

	if !h.gestures.Start(req.TaskID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, h.gestures.View())
}

// Hover updates the preview for the item under the pointer
func (h *GestureHandler) Hover(c *gin.Context) {
	var req GestureHoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !h.gestures.Hover(req.TargetID) {
		c.JSON(http.StatusConflict, gin.H{"error": "No gesture in progress"})
		return
	}

	c.JSON(http.StatusOK, h.gestures.View())
}

// End commits the drop, or reverts when there is no target
func (h *GestureHandler) End(c *gin.Context) {
	var req GestureEndRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target := ""
	if req.TargetID != nil {
		target = *req.TargetID
	}

	res, err := h.gestures.End(c.Request.Context(), target)
	if err != nil {
		if errors.Is(err, reorder.ErrNotDragging) {
			c.JSON(http.StatusConflict, gin.H{"error": "No gesture in progress"})
			return
		}
		respondError(c, err, "Failed to commit move")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": res,
		"view":   h.gestures.View(),
	})
}

// Cancel abandons the gesture and reverts to durable state
func (h *GestureHandler) Cancel(c *gin.Context) {
	if err := h.gestures.Cancel(c.Request.Context()); err != nil {
		if errors.Is(err, reorder.ErrNotDragging) {
			c.JSON(http.StatusConflict, gin.H{"error": "No gesture in progress"})
			return
		}
		respondError(c, err, "Failed to reload state")
		return
	}

	c.JSON(http.StatusOK, h.gestures.View())
}

// View returns the preview while dragging and durable state otherwise
func (h *GestureHandler) View(c *gin.Context) {
	if h.gestures.View().Phase == reorder.Idle {
		if err := h.gestures.Load(c.Request.Context()); err != nil {
			h.loadFailed(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, h.gestures.View())
}

func (h *GestureHandler) loadFailed(c *gin.Context, err error) {
	if errors.Is(err, reorder.ErrNoBoard) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active board"})
		return
	}
	respondError(c, err, "Failed to load state")
}
