package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

type BoardReader interface {
	GetState(ctx context.Context) (*model.KanbanState, error)
	Verify(ctx context.Context, boardID string) ([]model.Violation, error)
}

type BoardHandler struct {
	boards BoardReader
}

func NewBoardHandler(boards BoardReader) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// ColumnResponse is a column with its tasks resolved in display order
type ColumnResponse struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Color   string        `json:"color,omitempty"`
	TaskIDs []string      `json:"taskIds"`
	Tasks   []*model.Task `json:"tasks"`
}

type BoardResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Columns []ColumnResponse `json:"columns"`
}

type CheckResponse struct {
	Consistent bool              `json:"consistent"`
	Violations []model.Violation `json:"violations"`
}

func toBoardResponse(b *model.Board) BoardResponse {
	resp := BoardResponse{ID: b.ID, Title: b.Title, Columns: make([]ColumnResponse, 0, len(b.Columns))}
	for _, col := range b.Columns {
		resp.Columns = append(resp.Columns, ColumnResponse{
			ID:      col.ID,
			Title:   col.Title,
			Color:   col.Color,
			TaskIDs: col.TaskIDs,
			Tasks:   b.ColumnTasks(col.ID),
		})
	}
	return resp
}

// GetState returns the full durable state
func (h *BoardHandler) GetState(c *gin.Context) {
	state, err := h.boards.GetState(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load state")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetByID returns one board with the tasks of each column in order
func (h *BoardHandler) GetByID(c *gin.Context) {
	state, err := h.boards.GetState(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load state")
		return
	}

	board, ok := state.Boards[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(board))
}

// Check reports ownership invariant violations on the board
func (h *BoardHandler) Check(c *gin.Context) {
	violations, err := h.boards.Verify(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, store.ErrInconsistent) {
		respondError(c, err, "Failed to verify board")
		return
	}
	if violations == nil {
		violations = []model.Violation{}
	}

	c.JSON(http.StatusOK, CheckResponse{
		Consistent: len(violations) == 0,
		Violations: violations,
	})
}
