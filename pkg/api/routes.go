package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"fpl-onboarding/pkg/middleware"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// NewRouter builds the gin engine serving the onboarding pages
func NewRouter(h *Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(allowedOrigins...))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes attaches the onboarding routes to router
func RegisterRoutes(router gin.IRouter, h *Handlers) {
	router.GET("/", h.LoginPage)
	router.GET("/health", h.HealthCheck)

	register := router.Group("/register")
	register.GET("", h.RegisterPage)
	register.POST("/signup", h.HandleSignup)
	register.POST("/team", h.HandleTeamSubmit)
	register.POST("/team/input", h.HandleTeamInput)
}
