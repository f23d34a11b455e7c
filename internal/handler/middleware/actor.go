package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ActorHeader   = "X-User-ID"
	UnknownActor  = "unknown"
	ctxActorIDKey = "actor_id"
)

// ActorMiddleware records who is acting on the request. Credentials are checked
// by the front end; the header is taken as given.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(ActorHeader)); id != "" {
			c.Set(ctxActorIDKey, id)
		}
		c.Next()
	}
}

// GetActorID returns the acting user id, or UnknownActor when the request carried none.
func GetActorID(c *gin.Context) string {
	if v, exists := c.Get(ctxActorIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	if id := strings.TrimSpace(c.GetHeader(ActorHeader)); id != "" {
		return id
	}
	return UnknownActor
}
