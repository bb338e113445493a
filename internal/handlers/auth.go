package handlers

import (
	"net/http"
	"strings"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/middleware"
	"attendance-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	if middleware.CurrentSession(c).LoggedIn() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, models.PageLogin, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, models.PageLogin, "login.html", gin.H{"error": "Invalid form data."})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	if !h.Auth.Verify(form.Username, form.Password) {
		logger.L.Warn().Str("username", form.Username).Str("ip", c.ClientIP()).Msg("failed login")
		render(c, http.StatusUnauthorized, models.PageLogin, "login.html", gin.H{
			"error":    "Invalid credentials.",
			"username": form.Username,
		})
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUsernameKey, form.Username)
	sess.AddFlash("Welcome, " + form.Username + "!")
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
