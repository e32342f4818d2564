package weather

import (
	"math/rand/v2"
	"time"

	"workon/internal/domain/entity"
)

type weatherUseCase struct {
	now    func() time.Time
	random RandomSource
}

// sharedRandom draws from the process-wide generator, which is safe for concurrent use.
type sharedRandom struct{}

func (sharedRandom) IntN(n int) int {
	return rand.IntN(n)
}

func NewWeatherUseCase() UseCase {
	return NewWeatherUseCaseWithSource(time.Now, sharedRandom{})
}

func NewWeatherUseCaseWithSource(now func() time.Time, random RandomSource) UseCase {
	return &weatherUseCase{now: now, random: random}
}

func (useCase *weatherUseCase) GetForecasts() []entity.WeatherForecast {
	today := useCase.now()
	forecasts := make([]entity.WeatherForecast, 0, ForecastDays)

	for day := 1; day <= ForecastDays; day++ {
		temperatureC := entity.MinTemperatureC + useCase.random.IntN(entity.MaxTemperatureC-entity.MinTemperatureC+1)
		summary := entity.Summaries[useCase.random.IntN(len(entity.Summaries))]

		forecasts = append(forecasts, entity.NewWeatherForecast(today.AddDate(0, 0, day), temperatureC, summary))
	}

	return forecasts
}
