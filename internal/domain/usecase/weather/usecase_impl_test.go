package weather

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workon/internal/domain/entity"
)

// sequenceRandom returns the queued values in order, reduced modulo n
type sequenceRandom struct {
	values []int
	calls  []int
}

func (random *sequenceRandom) IntN(n int) int {
	random.calls = append(random.calls, n)
	value := random.values[0]
	random.values = random.values[1:]
	return value % n
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)
}

func TestGetForecasts_DatesStartTomorrow(t *testing.T) {
	useCase := NewWeatherUseCaseWithSource(fixedClock, rand.New(rand.NewPCG(1, 2)))

	forecasts := useCase.GetForecasts()

	require.Len(t, forecasts, ForecastDays)
	expected := []string{"2026-10-16", "2026-10-17", "2026-10-18", "2026-10-19", "2026-10-20"}
	for i, forecast := range forecasts {
		assert.Equal(t, expected[i], forecast.Date)
	}
}

func TestGetForecasts_DatesCrossYearEnd(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, time.December, 29, 0, 0, 0, 0, time.UTC) }
	useCase := NewWeatherUseCaseWithSource(clock, rand.New(rand.NewPCG(3, 4)))

	forecasts := useCase.GetForecasts()

	assert.Equal(t, "2026-12-30", forecasts[0].Date)
	assert.Equal(t, "2027-01-03", forecasts[4].Date)
}

func TestGetForecasts_DrawsTemperatureThenSummary(t *testing.T) {
	random := &sequenceRandom{values: []int{0, 0, 74, 9, 40, 4, 20, 3, 1, 8}}
	useCase := NewWeatherUseCaseWithSource(fixedClock, random)

	forecasts := useCase.GetForecasts()

	assert.Equal(t, []int{75, 10, 75, 10, 75, 10, 75, 10, 75, 10}, random.calls)
	assert.Equal(t, -20, forecasts[0].TemperatureC)
	assert.Equal(t, "Freezing", forecasts[0].Summary)
	assert.Equal(t, 54, forecasts[1].TemperatureC)
	assert.Equal(t, "Scorching", forecasts[1].Summary)
	assert.Equal(t, 20, forecasts[2].TemperatureC)
	assert.Equal(t, "Mild", forecasts[2].Summary)
	assert.Equal(t, 0, forecasts[3].TemperatureC)
	assert.Equal(t, "Cool", forecasts[3].Summary)
	assert.Equal(t, -19, forecasts[4].TemperatureC)
	assert.Equal(t, "Sweltering", forecasts[4].Summary)
}

func TestGetForecasts_ValuesWithinRange(t *testing.T) {
	useCase := NewWeatherUseCase()

	for i := 0; i < 200; i++ {
		for _, forecast := range useCase.GetForecasts() {
			assert.GreaterOrEqual(t, forecast.TemperatureC, entity.MinTemperatureC)
			assert.LessOrEqual(t, forecast.TemperatureC, entity.MaxTemperatureC)
			assert.Equal(t, entity.ToFahrenheit(forecast.TemperatureC), forecast.TemperatureF)
			assert.True(t, slices.Contains(entity.Summaries, forecast.Summary), forecast.Summary)
		}
	}
}

func TestGetForecasts_ConcurrentCalls(t *testing.T) {
	useCase := NewWeatherUseCase()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, useCase.GetForecasts(), ForecastDays)
		}()
	}
	wg.Wait()
}
