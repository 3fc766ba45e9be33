package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/auth"
)

// UserKey is the gin context key the session middleware stores the username
// under.
const UserKey = "session_user"

// RequireSession rejects requests without a valid bearer session token. All
// CRUD routes sit behind it; the dashboard is unreachable when logged out.
func RequireSession(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		user, ok := sessions.UserForToken(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireFeedToken guards the count-feed endpoints with a shared secret. The
// feed collaborator is not a browser session; it authenticates with the
// configured token instead.
func RequireFeedToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" || c.GetHeader("X-Feed-Token") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid feed token"})
			return
		}
		c.Next()
	}
}
