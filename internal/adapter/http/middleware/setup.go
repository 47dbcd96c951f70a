package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//
//  1. RequestID - first, so all subsequent logging can correlate
//  2. RequestLogger - logs every request with the request ID
//  3. Recover - catches panics and returns 500 (wraps handlers)
//  4. CORS - the dashboard frontend is served from a different origin
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	e.Use(echomw.CORS())
}
