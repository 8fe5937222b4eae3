package weather

import (
	"weather-bff/internal/apperror"
	"weather-bff/internal/providers/openmeteo"
	"weather-bff/internal/types"
)

// mapDailyForecast converts the provider's parallel daily arrays into one
// record per index. Every required array must be present, at least as long
// as daily.time, and free of nulls within that range.
func mapDailyForecast(latitude, longitude float64, requested types.Units, resp *openmeteo.DailyForecastAPIResponse) (*types.ForecastResult, error) {
	if resp == nil || resp.Daily == nil {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteDaily)
	}

	daily := resp.Daily
	if daily.Time == nil || daily.WeatherCode == nil || daily.Temperature2MMax == nil || daily.Temperature2MMin == nil {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteDaily)
	}

	n := len(daily.Time)
	if len(daily.WeatherCode) < n || len(daily.Temperature2MMax) < n || len(daily.Temperature2MMin) < n {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteDaily)
	}

	days := make([]types.DailyForecast, 0, n)
	for i, date := range daily.Time {
		code, tempMax, tempMin := daily.WeatherCode[i], daily.Temperature2MMax[i], daily.Temperature2MMin[i]
		if code == nil || tempMax == nil || tempMin == nil {
			return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteDaily)
		}

		day := types.DailyForecast{
			Date:               date,
			WeatherCode:        *code,
			WeatherDescription: types.GetWeatherDescription(types.WeatherCode(*code)),
			TemperatureMax:     *tempMax,
			TemperatureMin:     *tempMin,
		}
		if i < len(daily.PrecipitationProbabilityMax) && daily.PrecipitationProbabilityMax[i] != nil {
			p := *daily.PrecipitationProbabilityMax[i]
			day.PrecipitationProbability = &p
		}
		days = append(days, day)
	}

	units, symbol := resolveUnits(requested, resp.TemperatureUnitSymbol())

	return &types.ForecastResult{
		Latitude:   latitude,
		Longitude:  longitude,
		Units:      units,
		UnitSymbol: symbol,
		Days:       days,
	}, nil
}

// resolveUnits prefers the provider's reported symbol and falls back to the
// requested system when the symbol is empty or unrecognized.
func resolveUnits(requested types.Units, reportedSymbol string) (types.Units, string) {
	if reportedSymbol == "" {
		return requested, requested.Symbol()
	}
	if units, ok := types.UnitsFromSymbol(reportedSymbol); ok {
		return units, reportedSymbol
	}
	return requested, reportedSymbol
}

// mapHourlyForecast keeps at most the first 24 entries. A null inside that
// window makes the response incomplete.
func mapHourlyForecast(resp *openmeteo.HourlyForecastAPIResponse) ([]types.HourlyForecast, error) {
	if resp == nil || resp.Hourly == nil {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteHourly)
	}

	hourly := resp.Hourly
	if hourly.Time == nil || hourly.Temperature2M == nil || hourly.Precipitation == nil || hourly.WeatherCode == nil {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteHourly)
	}

	n := min(len(hourly.Time), openmeteo.HourlyForecastHours)
	if len(hourly.Temperature2M) < n || len(hourly.Precipitation) < n || len(hourly.WeatherCode) < n {
		return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteHourly)
	}

	out := make([]types.HourlyForecast, 0, n)
	for i := 0; i < n; i++ {
		temp, precip, code := hourly.Temperature2M[i], hourly.Precipitation[i], hourly.WeatherCode[i]
		if temp == nil || precip == nil || code == nil {
			return nil, apperror.NewUpstreamDataIncomplete(msgIncompleteHourly)
		}

		out = append(out, types.HourlyForecast{
			Time:          hourly.Time[i],
			Temperature:   *temp,
			Precipitation: *precip,
			Condition:     types.ConditionFromCode(types.WeatherCode(*code)),
		})
	}

	return out, nil
}
