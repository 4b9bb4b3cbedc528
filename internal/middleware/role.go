package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
)

// RequireRole limits a route to the given roles.  It must run after
// JWTAuth.  The use cases re-check role rules themselves; this guard
// rejects obvious trespassers before a handler runs.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, _ := c.Get(CtxRole).(string)
            if !allowed[role] {
                return c.JSON(http.StatusForbidden,
                    apperr.Forbidden("you do not have the required permissions"))
            }
            return next(c)
        }
    }
}
