// Package server assembles the gin engine: middleware, static uploads,
// and the /api/v1 route tree.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sidra-al/Double-H-Portfolio/internal/auth"
	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/content"
	"github.com/sidra-al/Double-H-Portfolio/internal/httpx"
	"github.com/sidra-al/Double-H-Portfolio/internal/uploads"
)

// New builds the router. Write routes on the content resources carry no
// auth middleware, matching the deployed behavior where the dashboard
// client is the only gate; /auth/verify is the sole protected route.
func New(cfg *config.Config) *gin.Engine {
	httpx.ExposeDetail = !cfg.IsProduction()

	r := gin.Default()
	r.Use(CORS(cfg))
	r.Static("/uploads", cfg.UploadDir)

	receiver := uploads.NewReceiver(cfg.UploadDir)

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		httpx.OK(c, "", gin.H{"status": "ok", "env": cfg.AppEnv})
	})

	a := v1.Group("/auth")
	a.POST("/login", auth.LoginHandler(cfg))
	a.GET("/verify", auth.RequireAuth(cfg), auth.VerifyHandler)

	content.NewResource("projects", "Project", true, receiver).Register(v1.Group("/projects"))
	content.NewResource("partners", "Partner", false, receiver).Register(v1.Group("/partners"))
	content.NewResource("hero", "Hero entry", false, receiver).Register(v1.Group("/hero"))

	return r
}
