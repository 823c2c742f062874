package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func parseBasicAuth(c echo.Context) (string, string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	creds := strings.SplitN(string(decoded), ":", 2)
	if len(creds) != 2 {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return creds[0], creds[1], nil
}

// RequireAdmin 以環境提供的固定憑證保護管理端點。
// 只做 Basic 驗證，不發行任何會話令牌。
func RequireAdmin(username, password string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, pass, err := parseBasicAuth(c)
			if err != nil {
				return err
			}
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !userOK || !passOK {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
			}
			return next(c)
		}
	}
}
