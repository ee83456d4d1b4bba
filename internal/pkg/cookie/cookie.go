package cookie

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"event-booking-api/internal/pkg/config"
)

const (
	AccessTokenName  = "access_token"
	RefreshTokenName = "refresh_token"
)

func sameSite(cfg config.CookieConfig) http.SameSite {
	switch cfg.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func SetAuthCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(sameSite(cfg))
	c.SetCookie(AccessTokenName, accessToken, accessMaxAge, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenName, refreshToken, refreshMaxAge, "/", cfg.Domain, cfg.Secure, true)
}

func ClearAuthCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg))
	c.SetCookie(AccessTokenName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenName)
	if err != nil {
		return ""
	}
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, err := c.Cookie(RefreshTokenName)
	if err != nil {
		return ""
	}
	return token
}
