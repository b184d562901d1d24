package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/model"
	"mall-storefront/internal/store"
)

// RequireLogin rejects anonymous requests.
func RequireLogin(prefs store.PrefStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := prefs.Session()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "read session")
			}
			if !sess.LoggedIn() {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			c.Set("session", sess)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles. The role switch is
// exhaustive: a role outside the known enum is rejected, not ignored.
func RequireRole(prefs store.PrefStore, allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := prefs.Session()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "read session")
			}
			if !sess.LoggedIn() {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			switch sess.Role {
			case model.RoleAdmin, model.RoleShop, model.RoleUser:
				if !slices.Contains(allowed, sess.Role) {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
				}
			default:
				return echo.NewHTTPError(http.StatusForbidden, "unknown role")
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}
