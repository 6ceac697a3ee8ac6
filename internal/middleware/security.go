package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. Files served under
// uploadsPrefix are customer photos and may be cached by browsers; every
// other response is marked no-store since it carries customer data.
func SecurityHeaders(uploadsPrefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if uploadsPrefix != "" && strings.HasPrefix(c.Request().URL.Path, uploadsPrefix+"/") {
				h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self'")
				h.Set("Cache-Control", "public, max-age=86400")
				return next(c)
			}

			h.Set("Content-Security-Policy", "default-src 'self'")
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}
