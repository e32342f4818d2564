package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"workon/internal/domain/model"
	"workon/internal/domain/usecase/health"
	"workon/pkg/log"
	"workon/pkg/msg"
)

// HealthResponseWriter renders a health report into the response.
type HealthResponseWriter func(c echo.Context, report model.HealthReport) error

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
	writer  HealthResponseWriter
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase, writer: WriteWorking}
}

// WithResponseWriter replaces the default plain-text writer.
func (controller *HealthController) WithResponseWriter(writer HealthResponseWriter) *HealthController {
	controller.writer = writer
	return controller
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/healthcheck", controller.CheckHealth).Name = "HealthCheck"
}

// CheckHealth godoc
// @Summary Health check
// @Description Run the registered health checks and answer with a fixed liveness text
// @Tags health
// @Produce plain
// @Success 200 {string} string "WORKING"
// @Router /healthcheck [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	report := controller.useCase.CheckHealth(c.Request().Context())

	for name, component := range report.Components {
		if component.Status != model.StatusHealthy {
			log.Debug(msg.GetMessage("health.component-unhealthy", name, component.Status),
				zap.String("component", name),
				zap.Any("details", component.Details),
			)
		}
	}

	return controller.writer(c, report)
}

// WriteWorking answers 200 text/plain "WORKING" whatever the report says.
func WriteWorking(c echo.Context, _ model.HealthReport) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlain, []byte(msg.GetMessage("health.working")))
}
