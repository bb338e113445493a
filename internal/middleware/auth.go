package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).LoggedIn() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePrivileged пропускает только аккаунт администратора, остальным отдаёт denied.
func RequirePrivileged(denied gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Privileged {
			denied(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
