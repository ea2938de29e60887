package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"beautify-api/internal/pkg/cookie"
	"beautify-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminEmailKey = "admin_email"
	ctxAdminRoleKey  = "admin_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access token from the HttpOnly cookie or an
// Authorization bearer header. There is a single admin identity.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.Validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Set(ctxAdminRoleKey, claims.Role)
		c.Next()
	}
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
