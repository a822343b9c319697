package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
)

// ErrorHandler renders every error as {message, fields?}. Validation
// failures enumerate their field descriptors; anything unclassified is
// logged with its real cause and answered with a generic message plus the
// request id as an opaque diagnostic handle.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			body := echo.Map{"message": appErr.Message}
			if len(appErr.Fields) > 0 {
				body["fields"] = appErr.Fields
			}
			_ = c.JSON(appErr.StatusCode, body)
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, echo.Map{"message": fmt.Sprintf("%v", httpErr.Message)})
			return
		}

		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		logger.Error().Err(err).
			Str("request_id", requestID).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, echo.Map{
			"message":    "internal error",
			"request_id": requestID,
		})
	}
}
