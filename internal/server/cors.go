package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidra-al/Double-H-Portfolio/internal/config"
)

// CORS validates the Origin header against the configured allow-list.
// Outside production every origin is accepted. A rejected origin gets a
// 403 echoing the origin back. Requests without an Origin header (curl,
// server-to-server) pass through untouched.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = true
	}
	strict := cfg.IsProduction()

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if strict && !allowed[origin] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Origin not allowed: " + origin,
			})
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
