package middleware

import (
	"attendance-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionKey         = "Session"
	SessionUsernameKey = "username"
)

// InjectSession собирает SessionContext из cookie-сессии и кладёт его в gin.Context.
func InjectSession(isPrivileged func(string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		sc := &models.SessionContext{}
		if username, ok := sess.Get(SessionUsernameKey).(string); ok && username != "" {
			sc.Username = username
			sc.Privileged = isPrivileged(username)
		}

		c.Set(SessionKey, sc)
		c.Next()
	}
}

// CurrentSession никогда не возвращает nil.
func CurrentSession(c *gin.Context) *models.SessionContext {
	if v, ok := c.Get(SessionKey); ok {
		if sc, ok := v.(*models.SessionContext); ok {
			return sc
		}
	}
	return &models.SessionContext{}
}
