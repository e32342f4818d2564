package entity

import "time"

const (
	MinTemperatureC = -20
	MaxTemperatureC = 54
)

// Summaries is the ordered set of words a forecast summary is drawn from.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// WeatherForecast is a single day's synthetic weather record.
type WeatherForecast struct {
	Date         string `json:"date" example:"2026-10-16"`
	TemperatureC int    `json:"temperatureC" example:"21"`
	TemperatureF int    `json:"temperatureF" example:"69"`
	Summary      string `json:"summary" example:"Mild"`
}

func NewWeatherForecast(date time.Time, temperatureC int, summary string) WeatherForecast {
	return WeatherForecast{
		Date:         date.Format(time.DateOnly),
		TemperatureC: temperatureC,
		TemperatureF: ToFahrenheit(temperatureC),
		Summary:      summary,
	}
}

// ToFahrenheit truncates toward zero.
func ToFahrenheit(temperatureC int) int {
	return 32 + int(float64(temperatureC)/0.5556)
}
