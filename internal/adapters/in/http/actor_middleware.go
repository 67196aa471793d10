package http

import (
	"net/http"

	"travelorders/internal/core/domain/model/actor"
	"travelorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderActorID carries the caller's identity. Identity issuance is an
	// external collaborator; the service trusts the header.
	HeaderActorID = "X-Actor-Id"

	// HeaderActorRole carries the caller's role ("user" or "admin").
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// ActorMiddleware resolves the acting identity from the request headers and
// stores it on the echo context. Requests without a valid actor get 401.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + HeaderActorID + " header",
				})
			}

			role, err := actor.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + HeaderActorRole + " header",
				})
			}

			a, err := actor.NewActor(id, role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid actor identity",
				})
			}

			ctx.Set(actorContextKey, a)
			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by ActorMiddleware.
func actorFromContext(ctx echo.Context) (actor.Actor, bool) {
	a, ok := ctx.Get(actorContextKey).(actor.Actor)
	return a, ok
}
