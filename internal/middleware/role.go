package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
)

// RequireRoles enforces that the authenticated user's role is one of the
// allowed set. It assumes JWTAuth ran earlier on the chain; requests that
// reach it unauthenticated carry RoleNone, which only passes when RoleNone
// itself is in the set. Failure is 403, never 401 — the caller is known,
// just not permitted.
func RequireRoles(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsMember(CurrentRole(c), roles) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
			}
			return next(c)
		}
	}
}

// RequirePermission enforces that the authenticated user's role carries the
// required permission tag. Unknown roles resolve to an empty permission
// set, so the default is deny.
func RequirePermission(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.HasPermission(CurrentRole(c), required) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}
