package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockline/timetrack-api/internal/api/middleware"
	"github.com/clockline/timetrack-api/internal/core/domain"
)

// ctxActor extracts the actor injected by the Auth middleware and fails fast
// with a 401 when it is absent, which would mean the route was wired without
// authentication.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, ok := c.Get(middleware.ActorKey).(domain.Actor)
	if !ok || actor.ID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
