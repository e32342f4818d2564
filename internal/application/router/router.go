package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"workon/configs"
	"workon/internal/application/controller"
	"workon/internal/application/middleware"
	"workon/internal/domain/usecase/health"
	"workon/internal/domain/usecase/weather"
	"workon/pkg/msg"
	"workon/pkg/resource"
)

type Config struct {
	ContextPath    string
	SwaggerEnabled bool
	MetricsEnabled bool
	HTTPSRedirect  bool
}

type Dependencies struct {
	WeatherUseCase weather.UseCase
	HealthUseCase  health.UseCase
}

// ConfigFromProperties reads the router settings from the loaded properties.
// Swagger is also served whenever the environment is development.
func ConfigFromProperties() Config {
	return Config{
		ContextPath:    resource.GetString("app.server.context-path"),
		SwaggerEnabled: resource.GetBool("app.swagger.enabled") || configs.Env.IsDevelopment(),
		MetricsEnabled: resource.GetBool("app.metrics.enabled"),
		HTTPSRedirect:  resource.GetBool("app.server.https-redirect"),
	}
}

// New builds the Echo instance with the full request pipeline and route table.
func New(config Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if config.HTTPSRedirect {
		e.Pre(echomw.HTTPSRedirect())
	}

	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	var metrics *middleware.RequestMetrics
	if config.MetricsEnabled {
		metrics = middleware.NewRequestMetrics()
		e.Use(metrics.Middleware())
	}

	e.Use(middleware.StatusCodePages(map[int]string{
		http.StatusNotFound: msg.GetMessage("http.route-not-found"),
	}))

	api := e.Group(config.ContextPath)

	controller.NewWeatherController(api, deps.WeatherUseCase).InitWeatherRoutes()
	controller.NewHealthController(api, deps.HealthUseCase).InitHealthRoutes()

	if config.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	if metrics != nil {
		e.GET("/metrics", metrics.Handler())
	}

	controller.NewFallbackController(e).InitFallbackRoutes()

	return e
}
