package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/auth"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/mw"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles the POST /api/login request.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		abortStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": req.Username})
}

// Logout handles the POST /api/logout request.
func (h *Handler) Logout(c *gin.Context) {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		abortStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSession handles the GET /api/session request.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString(mw.UserKey)})
}

// GetVAPIDPublicKey returns the VAPID public key to the client.
func (h *Handler) GetVAPIDPublicKey(c *gin.Context) {
	if h.vapidPublic == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "vapid keys are not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_key": h.vapidPublic})
}
