package types

import "fmt"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// weatherDescriptions maps weather codes to their descriptions
var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                     "Clear sky",
	MainlyClear:                  "Mainly clear",
	PartlyCloudy:                 "Partly cloudy",
	Overcast:                     "Overcast",
	Fog:                          "Fog",
	DepositingRimeFog:            "Depositing rime fog",
	DrizzleLight:                 "Drizzle: Light intensity",
	DrizzleModerate:              "Drizzle: Moderate intensity",
	DrizzleDense:                 "Drizzle: Dense intensity",
	FreezingDrizzleLight:         "Freezing Drizzle: Light intensity",
	FreezingDrizzleDense:         "Freezing Drizzle: Dense intensity",
	RainSlight:                   "Rain: Slight intensity",
	RainModerate:                 "Rain: Moderate intensity",
	RainHeavy:                    "Rain: Heavy intensity",
	FreezingRainLight:            "Freezing Rain: Light intensity",
	FreezingRainHeavy:            "Freezing Rain: Heavy intensity",
	SnowFallSlight:               "Snow fall: Slight intensity",
	SnowFallModerate:             "Snow fall: Moderate intensity",
	SnowFallHeavy:                "Snow fall: Heavy intensity",
	SnowGrains:                   "Snow grains",
	RainShowersSlight:            "Rain showers: Slight",
	RainShowersModerate:          "Rain showers: Moderate",
	RainShowersViolent:           "Rain showers: Violent",
	SnowShowersSlight:            "Snow showers: Slight",
	SnowShowersHeavy:             "Snow showers: Heavy",
	ThunderstormSlightOrModerate: "Thunderstorm: Slight or moderate",
	ThunderstormWithSlightHail:   "Thunderstorm with slight hail",
	ThunderstormWithHeavyHail:    "Thunderstorm with heavy hail",
}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code WeatherCode) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown (Code: %d)", code)
}

// Coarse condition labels used by the hourly forecast
const (
	ConditionClear        = "Clear"
	ConditionPartlyCloudy = "Partly Cloudy"
	ConditionCloudy       = "Cloudy"
	ConditionRain         = "Rain"
	ConditionSnow         = "Snow"
	ConditionUnknown      = "Unknown"
)

// ConditionFromCode buckets a WMO code into a condition label by threshold.
// Fog (45, 48) lands in Cloudy and rain showers (80-82) in Snow.
func ConditionFromCode(code WeatherCode) string {
	switch {
	case code == ClearSky:
		return ConditionClear
	case code < Overcast:
		return ConditionPartlyCloudy
	case code < 50:
		return ConditionCloudy
	case code < 70:
		return ConditionRain
	case code < 90:
		return ConditionSnow
	default:
		return ConditionUnknown
	}
}
