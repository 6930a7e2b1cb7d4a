package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/httpx"
)

const claimsKey = "auth.claims"

// RequireAuth rejects requests without a valid bearer token and stores the
// parsed claims in the request context for downstream handlers.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			httpx.Fail(c, httpx.Unauthorized("No token provided"))
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(h, "Bearer "), cfg.JWTSecret)
		if err != nil {
			httpx.Fail(c, httpx.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims stored by RequireAuth, if any.
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
