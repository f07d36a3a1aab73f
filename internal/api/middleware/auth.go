package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// ActorKey is the echo context key the Auth middleware stores the resolved
// actor under.
const ActorKey = "actor"

// TokenVerifier checks a raw token and returns the subject id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth verifies the bearer token and resolves the actor from the user store,
// so the role carried through the request is the current one rather than
// whatever was baked into the token at issue time. Every failure collapses to
// a plain 401.
func Auth(tokens TokenVerifier, users ports.UserRepository) echo.MiddlewareFunc {
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

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ActorKey, domain.Actor{ID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}
