package cookie

import (
	"time"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// The admin dashboard is served from the same origin, so a Lax HttpOnly
// cookie is enough; the token is also returned in the body for API clients.
func SetAccessToken(c *gin.Context, token string, expiry time.Duration) {
	c.SetCookie(
		AccessTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context) {
	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
