package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meetwise-team/meeting-pipeline/pkg/jwt"
)

// EchoServiceAuth returns Echo middleware that verifies bearer service
// tokens on read endpoints. When manager is nil (no secret configured) the
// middleware is a pass-through, which keeps local development usable.
func EchoServiceAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if manager == nil {
				return next(c)
			}

			token := extractBearer(c.Request().Header.Get("Authorization"))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "missing bearer token",
				})
			}

			claims, err := manager.ValidateServiceToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "invalid service token",
				})
			}

			c.Set("service", claims.Service)
			return next(c)
		}
	}
}

// extractBearer pulls the token out of an Authorization header
func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
