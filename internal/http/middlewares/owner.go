package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
)

// OwnerHeader carries the opaque owner identifier issued by the
// authentication layer in front of this service.
const OwnerHeader = "X-Owner-ID"

// OwnerContextKey is where the extractor stores the identifier for
// handlers to read.
const OwnerContextKey = "owner_id"

// OwnerExtractor rejects requests that arrive without an owner identity.
// Everything downstream can then require the owner as a plain parameter.
func OwnerExtractor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			owner := strings.TrimSpace(c.Request().Header.Get(OwnerHeader))
			if owner == "" {
				return apperrors.ErrOwnerRequired
			}
			c.Set(OwnerContextKey, owner)
			return next(c)
		}
	}
}
