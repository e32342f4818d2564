package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newStatusCodePagesEcho() *echo.Echo {
	e := echo.New()
	e.Use(StatusCodePages(map[int]string{http.StatusNotFound: "Rota não encontrada"}))
	e.GET("/missing-item", func(c echo.Context) error {
		return echo.ErrNotFound
	})
	e.GET("/wrapped", func(c echo.Context) error {
		return errors.Join(errors.New("lookup failed"), echo.NewHTTPError(http.StatusNotFound, "item"))
	})
	e.GET("/already-written", func(c echo.Context) error {
		_ = c.String(http.StatusNotFound, "custom")
		return echo.ErrNotFound
	})
	e.GET("/forbidden", func(c echo.Context) error {
		return echo.ErrForbidden
	})
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStatusCodePages_RewritesNotFound(t *testing.T) {
	e := newStatusCodePagesEcho()

	for _, target := range []string{"/missing-item", "/wrapped"} {
		rec := serve(e, http.MethodGet, target)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, echo.MIMETextPlain, rec.Header().Get(echo.HeaderContentType), target)
		assert.Equal(t, "Rota não encontrada", rec.Body.String(), target)
	}
}

func TestStatusCodePages_LeavesWrittenResponse(t *testing.T) {
	rec := serve(newStatusCodePagesEcho(), http.MethodGet, "/already-written")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "custom", rec.Body.String())
}

func TestStatusCodePages_IgnoresOtherStatus(t *testing.T) {
	e := newStatusCodePagesEcho()

	rec := serve(e, http.MethodGet, "/forbidden")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Rota não encontrada")

	rec = serve(e, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
