package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/auth"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/feed"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/stats"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store       store.Store
	sessions    *auth.Manager
	stats       *stats.Generator
	feed        *feed.Service
	vapidPublic string
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, sessions *auth.Manager, generator *stats.Generator, feedSvc *feed.Service, vapidPublic string) *Handler {
	return &Handler{
		store:       s,
		sessions:    sessions,
		stats:       generator,
		feed:        feedSvc,
		vapidPublic: vapidPublic,
	}
}

// abortStoreError maps store errors onto HTTP statuses: validation 400,
// missing target 404, blocked delete 409, anything else 500.
func abortStoreError(c *gin.Context, err error) {
	var ve *store.ValidationError
	var iue *store.InUseError
	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.As(err, &iue):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": iue.Error(), "machines": iue.Machines})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
