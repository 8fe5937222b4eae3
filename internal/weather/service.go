package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"weather-bff/internal/apperror"
	"weather-bff/internal/config"
	"weather-bff/internal/providers/openmeteo"
	"weather-bff/internal/types"
)

const (
	msgIncompleteDaily    = "Received incomplete forecast data from Open-Meteo."
	msgIncompleteHourly   = "Received incomplete hourly forecast data from Open-Meteo."
	msgUnexpectedDaily    = "An unexpected error occurred while fetching weather data."
	msgUnexpectedHourly   = "An unexpected error occurred while fetching hourly weather data."
	upstreamMessagePrefix = "Open-Meteo API Error: "
)

type ForecastProvider interface {
	// GetDailyForecast fetches the daily forecast in the given temperature unit ("celsius" or "fahrenheit")
	GetDailyForecast(ctx context.Context, latitude, longitude float64, temperatureUnit string) (*openmeteo.DailyForecastAPIResponse, error)
	// GetHourlyForecast fetches the next 24 hours
	GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.HourlyForecastAPIResponse, error)
}

type Service interface {
	FetchWeekly(ctx context.Context, latitude, longitude float64, units types.Units) (*types.ForecastResult, error)
	FetchHourly(ctx context.Context, latitude, longitude float64) ([]types.HourlyForecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := openmeteo.NewForecastClientWithURL(logger, cfg.OpenMeteo.BaseURL, &http.Client{})
	return NewWeatherServiceWithProvider(client, logger)
}

func NewWeatherServiceWithProvider(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

// FetchWeekly returns the daily forecast for the coordinates. The result's
// Units follow the provider's reported unit when it sent one.
func (s *weatherService) FetchWeekly(ctx context.Context, latitude, longitude float64, units types.Units) (*types.ForecastResult, error) {
	apiResponse, err := s.forecastProvider.GetDailyForecast(ctx, latitude, longitude, units.TemperatureUnit())
	if err != nil {
		s.logger.Error("failed to get daily forecast from provider",
			"latitude", latitude,
			"longitude", longitude,
			"units", units,
			"error", err,
		)
		return nil, translateProviderError(err, http.StatusInternalServerError, msgUnexpectedDaily)
	}

	result, err := mapDailyForecast(latitude, longitude, units, apiResponse)
	if err != nil {
		s.logger.Error("provider returned incomplete daily forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug("mapped daily forecast",
		"latitude", latitude,
		"longitude", longitude,
		"units", result.Units,
		"days", len(result.Days),
	)

	return result, nil
}

// FetchHourly returns up to 24 hourly entries with a condition label
func (s *weatherService) FetchHourly(ctx context.Context, latitude, longitude float64) ([]types.HourlyForecast, error) {
	apiResponse, err := s.forecastProvider.GetHourlyForecast(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("failed to get hourly forecast from provider",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, translateProviderError(err, http.StatusBadGateway, msgUnexpectedHourly)
	}

	hourly, err := mapHourlyForecast(apiResponse)
	if err != nil {
		s.logger.Error("provider returned incomplete hourly forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	return hourly, nil
}

// translateProviderError maps a failed provider call to UpstreamUnavailable,
// and anything it does not recognize to Internal. fallbackStatus is used when
// the provider reported no status.
func translateProviderError(err error, fallbackStatus int, unexpectedMessage string) error {
	var apiErr *openmeteo.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = fallbackStatus
		}
		reason := apiErr.Reason
		if reason == "" {
			reason = fmt.Sprintf("Request failed with status code %d", apiErr.StatusCode)
		}
		return apperror.NewUpstreamUnavailable(status, upstreamMessagePrefix+reason, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperror.NewUpstreamUnavailable(fallbackStatus, upstreamMessagePrefix+urlErr.Error(), err)
	}

	if appErr, ok := apperror.As(err); ok {
		return appErr
	}

	return apperror.NewInternal(unexpectedMessage, err)
}
