package handlers

import (
	"errors"
	"net/http"
	"strings"

	"attendance-registry/internal/middleware"
	"attendance-registry/internal/models"
	"attendance-registry/internal/services"

	"github.com/gin-gonic/gin"
)

//
// УПРАВЛЕНИЕ ПОЛЬЗОВАТЕЛЯМИ (только admin)
//

func (h *Handler) ShowUsers(c *gin.Context) {
	h.renderUsers(c, http.StatusOK, "", "")
}

func (h *Handler) renderUsers(c *gin.Context, status int, username, errMsg string) {
	users, err := h.Auth.ListUsers()
	if err != nil {
		renderFailure(c, models.PageUsers, "list users", err)
		return
	}
	render(c, status, models.PageUsers, "users.html", gin.H{
		"users":    users,
		"username": username,
		"error":    errMsg,
	})
}

type provisionForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	var form provisionForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderUsers(c, http.StatusBadRequest, "", "Invalid form data.")
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	err := h.Auth.Provision(middleware.CurrentSession(c).Username, form.Username, form.Password)
	switch {
	case err == nil:
		flash(c, "User '"+form.Username+"' added successfully!")
		c.Redirect(http.StatusFound, "/users")
	case errors.Is(err, services.ErrForbidden):
		h.PermissionDenied(c)
	case errors.Is(err, services.ErrEmptyField):
		h.renderUsers(c, http.StatusBadRequest, form.Username, "Please fill in all fields.")
	case errors.Is(err, services.ErrDuplicateUser):
		h.renderUsers(c, http.StatusConflict, form.Username, "User '"+form.Username+"' already exists.")
	default:
		renderFailure(c, models.PageUsers, "provision user", err)
	}
}
