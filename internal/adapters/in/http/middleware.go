package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the header carrying the caller's API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth returns middleware that rejects requests whose X-API-Key header
// does not match the configured key. An empty configured key disables the
// check, which is how local development runs.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if apiKey == "" {
				return next(ctx)
			}

			supplied := ctx.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(apiKey)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing API key",
				})
			}

			return next(ctx)
		}
	}
}
