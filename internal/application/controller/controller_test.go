package controller

import (
	"context"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	_ "workon/configs"
	"workon/internal/domain/entity"
	"workon/internal/domain/model"
)

type stubWeatherUseCase struct {
	forecasts []entity.WeatherForecast
}

func (useCase stubWeatherUseCase) GetForecasts() []entity.WeatherForecast {
	return useCase.forecasts
}

type stubHealthUseCase struct {
	report model.HealthReport
	calls  int
}

func (useCase *stubHealthUseCase) CheckHealth(ctx context.Context) model.HealthReport {
	useCase.calls++
	return useCase.report
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

var unhealthyReport = model.HealthReport{
	Status: model.StatusUnhealthy,
	Components: map[string]model.ComponentHealthStatus{
		"redis": {Status: model.StatusUnhealthy, Details: map[string]string{"message": "connection refused"}},
	},
}
