package openmeteo

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DailyForecastAPIResponse is the subset of the forecast response used for
// daily forecasts. Arrays the provider omitted decode as nil.
type DailyForecastAPIResponse struct {
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	GenerationtimeMs float64     `json:"generationtime_ms"`
	UtcOffsetSeconds int         `json:"utc_offset_seconds"`
	Timezone         string      `json:"timezone"`
	Elevation        float64     `json:"elevation"`
	DailyUnits       *DailyUnits `json:"daily_units"`
	Daily            *Daily      `json:"daily"`
}

type DailyUnits struct {
	Time                        string `json:"time"`
	Temperature2MMax            string `json:"temperature_2m_max"`
	Temperature2MMin            string `json:"temperature_2m_min"`
	WeatherCode                 string `json:"weather_code"`
	PrecipitationProbabilityMax string `json:"precipitation_probability_max"`
}

// Daily holds parallel arrays indexed by day offset. Entries the provider
// sent as null decode as nil pointers.
type Daily struct {
	Time                        []string   `json:"time"`
	Temperature2MMax            []*float64 `json:"temperature_2m_max"`
	Temperature2MMin            []*float64 `json:"temperature_2m_min"`
	WeatherCode                 []*int     `json:"weather_code"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// TemperatureUnitSymbol returns the reported unit of daily max temperature,
// or "" when the provider did not report one
func (r *DailyForecastAPIResponse) TemperatureUnitSymbol() string {
	if r.DailyUnits == nil {
		return ""
	}
	return r.DailyUnits.Temperature2MMax
}

// DayCount returns the number of days reported, 0 when daily data is absent
func (r *DailyForecastAPIResponse) DayCount() int {
	if r.Daily == nil {
		return 0
	}
	return len(r.Daily.Time)
}

// HourlyForecastAPIResponse is the subset of the forecast response used for
// hourly forecasts
type HourlyForecastAPIResponse struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	GenerationtimeMs float64      `json:"generationtime_ms"`
	UtcOffsetSeconds int          `json:"utc_offset_seconds"`
	Timezone         string       `json:"timezone"`
	Elevation        float64      `json:"elevation"`
	HourlyUnits      *HourlyUnits `json:"hourly_units"`
	Hourly           *Hourly      `json:"hourly"`
}

type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2M string `json:"temperature_2m"`
	Precipitation string `json:"precipitation"`
	WeatherCode   string `json:"weather_code"`
}

// Hourly holds parallel arrays indexed by hour offset. Null entries decode
// as nil pointers.
type Hourly struct {
	Time          []string   `json:"time"`
	Temperature2M []*float64 `json:"temperature_2m"`
	Precipitation []*float64 `json:"precipitation"`
	WeatherCode   []*int     `json:"weather_code"`
}

// HourCount returns the number of hours reported, 0 when hourly data is absent
func (r *HourlyForecastAPIResponse) HourCount() int {
	if r.Hourly == nil {
		return 0
	}
	return len(r.Hourly.Time)
}

// errorBody is the provider's error payload, e.g.
// {"error":true,"reason":"Latitude must be in range of -90 to 90°. Given: 100.0."}
type errorBody struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// APIError is returned when the provider answers with a non-2xx status
type APIError struct {
	StatusCode int
	Reason     string
	Body       string
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Reason = eb.Reason
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}
