package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// StatusCodePages rewrites handler errors carrying one of the given status codes
// into a text/plain response with the mapped body. Responses already written are left alone.
func StatusCodePages(pages map[int]string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil || c.Response().Committed {
				return err
			}

			var httpError *echo.HTTPError
			if !errors.As(err, &httpError) {
				return err
			}
			body, ok := pages[httpError.Code]
			if !ok {
				return err
			}
			return c.Blob(httpError.Code, echo.MIMETextPlain, []byte(body))
		}
	}
}
