package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workon/internal/domain/model"
	"workon/pkg/msg"
)

type FallbackController struct {
	e *echo.Echo
}

func NewFallbackController(e *echo.Echo) *FallbackController {
	return &FallbackController{e: e}
}

// InitFallbackRoutes answers every request no other route matches, for any method
func (controller *FallbackController) InitFallbackRoutes() {
	controller.e.RouteNotFound("/*", controller.EndpointNotFound)
}

// EndpointNotFound writes the complete 404 itself and returns nil, so status-code
// interception never sees an unmatched route.
func (controller *FallbackController) EndpointNotFound(c echo.Context) error {
	response := model.NewErrorResponse(http.StatusNotFound, msg.GetMessage("http.endpoint-not-found"))
	return c.Blob(response.StatusCode, echo.MIMEApplicationJSON, response.Body())
}
