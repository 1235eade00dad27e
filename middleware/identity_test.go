package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", RequireActor(role), func(c *gin.Context) {
		id, ok := ActorID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "actor id missing after middleware"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"actorID": id})
	})
	return r
}

func TestRequireActorAcceptsMatchingRole(t *testing.T) {
	r := newIdentityRouter(RoleDriver)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Actor-ID", "driver-42")
	req.Header.Set("X-Actor-Role", "Driver")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "driver-42")
}

func TestRequireActorRejectsMismatchedRole(t *testing.T) {
	r := newIdentityRouter(RoleGarage)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Actor-ID", "driver-42")
	req.Header.Set("X-Actor-Role", RoleDriver)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireActorRejectsMissingIdentity(t *testing.T) {
	r := newIdentityRouter(RoleDriver)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
