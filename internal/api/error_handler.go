package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders the categorized error page (client error vs server error).
//   - Logs only server-class failures; anything a user caused gets an
//     actionable message and no stack detail.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		data := map[string]interface{}{
			"Title":   fmt.Sprintf("%d %s", code, http.StatusText(code)),
			"Status":  code,
			"Message": msg,
		}
		if rerr := c.Render(code, "errors/error", data); rerr != nil {
			// Rendering the error page failed; fall back to plain text.
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (404 from the router, bad form bodies, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "Sorry, that vehicle could not be found."
	case errors.Is(err, domain.ErrClassificationNotFound):
		return http.StatusNotFound, "Sorry, that classification could not be found."
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Sorry, that account could not be found."
	case errors.Is(err, domain.ErrTestDriveNotFound):
		return http.StatusNotFound, "Sorry, that test drive request could not be found."
	}

	// Server-class failure: log the real cause, show a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong on our end. Please try again later."
}
