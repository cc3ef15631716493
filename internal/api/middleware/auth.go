package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bancobr/bank-api/internal/api/metrics"
	"github.com/bancobr/bank-api/internal/core/ports"
)

// Auth validates the bearer token and injects its claims into context.
// Token verification failures surface as 401, never as server faults.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
