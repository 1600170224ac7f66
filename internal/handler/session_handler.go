package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/auth"
)

type SessionHandler struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionHandler(secret string, ttl time.Duration) *SessionHandler {
	return &SessionHandler{secret: []byte(secret), ttl: ttl}
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Create issues a bearer token for a new UI session
func (h *SessionHandler) Create(c *gin.Context) {
	sessionID := uuid.New().String()
	token, err := auth.GenerateToken(h.secret, sessionID, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: time.Now().Add(h.ttl).Format(time.RFC3339),
	})
}
