package server

import (
	"html/template"
	"net/http"

	"attendance-registry/internal/config"
	"attendance-registry/internal/handlers"
	"attendance-registry/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.Static("/static", cfg.StaticDir)

	r.SetFuncMap(template.FuncMap{
		"eq":    func(a, b interface{}) bool { return a == b },
		"add":   func(a, b int) int { return a + b },
		"blank": handlers.BlankLabel,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("attendance_session", store))

	r.Use(middleware.InjectSession(h.Auth.IsPrivileged))

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// ГЛАВНАЯ: регистрация и список
	auth.GET("/", h.Home)
	auth.POST("/records", h.CreateRecord)
	auth.GET("/records/export", h.ExportRecords)

	// РЕДАКТИРОВАНИЕ
	auth.GET("/records/edit", h.ShowEdit)
	auth.POST("/records/:id/edit", h.UpdateRecord)

	// ВИЗУАЛИЗАЦИИ
	auth.GET("/visualizations", h.Visualizations)
	auth.GET("/visualizations/charts/municipality", h.MunicipalityChart)
	auth.GET("/visualizations/charts/timeline", h.TimelineChart)

	// ПОЛЬЗОВАТЕЛИ (только admin)
	admin := auth.Group("/users")
	admin.Use(middleware.RequirePrivileged(h.PermissionDenied))
	admin.GET("", h.ShowUsers)
	admin.POST("", h.CreateUser)

	auth.GET("/about", h.About)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
