package handlers

import (
	"fmt"
	"net/http"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/middleware"
	"attendance-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const failureMessage = "The operation failed and nothing was saved."

// render: обёртка над c.HTML: прокидывает в шаблон сессию, текущую страницу и flash-сообщения.
func render(c *gin.Context, status int, page models.Page, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sc := middleware.CurrentSession(c)
	sc.CurrentPage = page

	data["Session"] = sc
	data["CurrentUsername"] = sc.Username
	data["IsAdmin"] = sc.Privileged
	data["Page"] = string(page)

	sess := sessions.Default(c)
	if raw := sess.Flashes(); len(raw) > 0 {
		flashes := make([]string, 0, len(raw))
		for _, f := range raw {
			flashes = append(flashes, fmt.Sprint(f))
		}
		data["Flashes"] = flashes
		_ = sess.Save()
	}

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// renderFailure: единое сообщение об ошибке хранилища; сессия остаётся рабочей.
func renderFailure(c *gin.Context, page models.Page, action string, err error) {
	logger.L.Error().Err(err).Str("action", action).Str("user", middleware.CurrentSession(c).Username).Msg("operation failed")
	render(c, http.StatusInternalServerError, page, "error.html", gin.H{
		"error": failureMessage,
	})
}
