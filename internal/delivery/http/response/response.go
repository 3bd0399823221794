// Package response renders the wire envelope the browser client consumes.
// The shape is loose on purpose: success payloads carry endpoint-specific
// keys next to the flag, and the client keys its toasts off the exact
// message strings, so nothing here normalizes them.
package response

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// Success renders a success envelope with endpoint-specific extras merged in.
func Success(c echo.Context, statusCode int, message string, extras echo.Map) error {
	body := echo.Map{
		"success": true,
		"message": message,
	}
	for key, value := range extras {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}

// Fail renders a bare failure envelope.
func Fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{
		"success": false,
		"message": message,
	})
}

// FailWithErr renders a failure envelope carrying the underlying error text.
func FailWithErr(c echo.Context, statusCode int, message string, err error) error {
	return c.JSON(statusCode, echo.Map{
		"success": false,
		"error":   err.Error(),
		"message": message,
	})
}

// FromError maps an application error onto its contracted status and
// message. Anything else falls back to the endpoint's failure line with the
// error text attached.
func FromError(c echo.Context, err error, fallbackStatus int, fallbackMessage string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Fail(c, appErr.HTTPCode(), appErr.Message())
	}

	return FailWithErr(c, fallbackStatus, fallbackMessage, err)
}
