package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workon/internal/domain/entity"
)

func TestGetWeatherForecast(t *testing.T) {
	forecasts := []entity.WeatherForecast{
		{Date: "2026-10-16", TemperatureC: 21, TemperatureF: 69, Summary: "Mild"},
		{Date: "2026-10-17", TemperatureC: -5, TemperatureF: 24, Summary: "Bracing"},
	}
	e := echo.New()
	NewWeatherController(e.Group(""), stubWeatherUseCase{forecasts: forecasts}).InitWeatherRoutes()

	rec := serve(e, http.MethodGet, "/weatherforecast")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []entity.WeatherForecast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, forecasts, body)
	assert.Contains(t, rec.Body.String(), `"temperatureC":21`)
}
