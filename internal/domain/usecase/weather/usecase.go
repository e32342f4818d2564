package weather

import "workon/internal/domain/entity"

const ForecastDays = 5

type UseCase interface {
	// GetForecasts returns one synthetic forecast per day from tomorrow on, in ascending date order
	GetForecasts() []entity.WeatherForecast
}

// RandomSource draws a uniform integer in [0, n).
type RandomSource interface {
	IntN(n int) int
}
