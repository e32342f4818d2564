package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workon/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weatherforecast", controller.GetWeatherForecast).Name = "GetWeatherForecast"
}

// GetWeatherForecast godoc
// @Summary Get weather forecast
// @Description Generate a synthetic forecast for each of the next five days
// @Tags weather
// @Produce json
// @Success 200 {array} entity.WeatherForecast "Forecasts from tomorrow on, ascending by date"
// @Router /weatherforecast [get]
func (controller *WeatherController) GetWeatherForecast(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.GetForecasts())
}
