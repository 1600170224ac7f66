package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/logging"
	"taskboard/internal/repository"
	"taskboard/internal/store"
)

// OutcomeResponse is returned by every mutation that may resolve to a no-op.
type OutcomeResponse struct {
	Outcome store.Outcome `json:"outcome"`
}

func respondError(c *gin.Context, err error, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	entry := logging.Logger.WithError(err).WithField("path", c.FullPath())
	if errors.Is(err, repository.ErrPersistence) {
		entry = entry.WithField("persistence", true)
	}
	entry.Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
