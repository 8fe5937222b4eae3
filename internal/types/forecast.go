package types

// DailyForecast is one day of a weekly forecast
type DailyForecast struct {
	Date                     string   `json:"date" example:"2025-07-07"` // YYYY-MM-DD
	WeatherCode              int      `json:"weatherCode" example:"2"`
	WeatherDescription       string   `json:"weatherDescription" example:"Partly cloudy"`
	TemperatureMax           float64  `json:"temperatureMax" example:"30.1"`
	TemperatureMin           float64  `json:"temperatureMin" example:"19.4"`
	PrecipitationProbability *float64 `json:"precipitationProbability,omitempty" example:"40"`
}

// ForecastResult is the normalized weekly forecast for a coordinate.
// Units reflects the unit system the temperatures are actually in.
type ForecastResult struct {
	Latitude   float64         `json:"latitude" example:"51.5074"`
	Longitude  float64         `json:"longitude" example:"-0.1278"`
	Units      Units           `json:"units" example:"metric"`
	UnitSymbol string          `json:"unitSymbol" example:"°C"`
	Days       []DailyForecast `json:"days"`
}

// HourlyForecast is one hour of the next-24-hours forecast
type HourlyForecast struct {
	Time          string  `json:"time" example:"2025-07-07T12:00"`
	Temperature   float64 `json:"temperature" example:"22.3"`
	Precipitation float64 `json:"precipitation" example:"0"`
	Condition     string  `json:"condition" example:"Clear"`
}
