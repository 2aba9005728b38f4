package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/skulafrica/sitebuilder/core"
)

// schoolAdminMiddleware restricts an endpoint to admins of the school named
// by the :subdomain path param. Platform admin tokens (no subdomain claim)
// pass for any school.
func schoolAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			subdomain := core.CleanString(ctx.Param("subdomain"), true /* lower */)
			if claims.IsAdmin && (claims.Subdomain == "" || claims.Subdomain == subdomain) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
