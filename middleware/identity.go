package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Actor roles accepted from the upstream gateway.
const (
	RoleDriver = "driver"
	RoleGarage = "garage"
)

// Context key under which the authenticated actor id is stored.
const ActorIDKey = "actorID"

// RequireActor verifies that the upstream gateway forwarded an authenticated
// actor of the expected role and injects the actor id into the request
// context. Credential verification itself happens upstream; this layer only
// enforces the domain's role gate. The same check serves every role.
func RequireActor(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader("X-Actor-ID"))
		actorRole := strings.TrimSpace(c.GetHeader("X-Actor-Role"))

		if actorID == "" || !strings.EqualFold(actorRole, role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or mismatched actor identity for role " + role,
			})
			return
		}

		c.Set(ActorIDKey, actorID)
		c.Next()
	}
}

// ActorID retrieves the authenticated actor id set by RequireActor.
func ActorID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ActorIDKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
