package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidra-al/Double-H-Portfolio/internal/accounts"
	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/database"
	"github.com/sidra-al/Double-H-Portfolio/internal/httpx"
)

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler verifies submitted credentials and issues a signed token.
// Unknown usernames and wrong passwords return the identical response so
// the two cases cannot be told apart.
func LoginHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto loginDTO
		if err := c.ShouldBindJSON(&dto); err != nil || dto.Username == "" || dto.Password == "" {
			httpx.Fail(c, httpx.Validation("Please provide username and password"))
			return
		}

		var acct accounts.Account
		err := database.DB.First(&acct, "username = ?", strings.ToLower(dto.Username)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Fail(c, httpx.Unauthorized("Invalid credentials"))
			return
		}
		if err != nil {
			httpx.Fail(c, httpx.Internal("Login failed", err))
			return
		}

		if !acct.CheckPassword(dto.Password) {
			httpx.Fail(c, httpx.Unauthorized("Invalid credentials"))
			return
		}

		token, err := GenerateToken(&acct, cfg.JWTSecret)
		if err != nil {
			httpx.Fail(c, httpx.Internal("Login failed", err))
			return
		}

		httpx.OK(c, "Login successful", gin.H{
			"token": token,
			"user":  acct.Public(),
		})
	}
}

// VerifyHandler resolves the bearer token's subject back to an account.
// Runs behind RequireAuth.
func VerifyHandler(c *gin.Context) {
	claims, ok := CurrentClaims(c)
	if !ok {
		httpx.Fail(c, httpx.Unauthorized("No token provided"))
		return
	}

	var acct accounts.Account
	err := database.DB.First(&acct, claims.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.Fail(c, httpx.Unauthorized("User not found"))
		return
	}
	if err != nil {
		httpx.Fail(c, httpx.Internal("Verification failed", err))
		return
	}

	httpx.OK(c, "", gin.H{"user": acct.Public()})
}
