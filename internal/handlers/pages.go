package handlers

import (
	"net/http"

	"attendance-registry/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) About(c *gin.Context) {
	render(c, http.StatusOK, models.PageAbout, "about.html", nil)
}

// PermissionDenied показывается, если страницу администратора открыл кто-то другой.
func (h *Handler) PermissionDenied(c *gin.Context) {
	render(c, http.StatusForbidden, models.PageUsers, "denied.html", gin.H{
		"error": "You do not have permission to access this page.",
	})
}
