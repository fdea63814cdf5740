package middleware

import (
	"strings"

	"hof-drops/internal/pkg/config"
	"hof-drops/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader   = "X-Session-ID"
	ctxSessionIDKey = "session_id"
)

// SessionResolver exposes the shopper session from the X-Session-ID header or
// the session cookie. A session id in the request body still takes precedence.
func SessionResolver(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sessionID == "" {
			sessionID = cookie.GetSessionID(c, cfg)
		}
		if sessionID != "" {
			c.Set(ctxSessionIDKey, sessionID)
		}
		c.Next()
	}
}

func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(ctxSessionIDKey, sessionID)
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
