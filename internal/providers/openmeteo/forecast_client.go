package openmeteo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// API Docs: https://open-meteo.com/en/docs
// Sample requests:
// - https://api.open-meteo.com/v1/forecast?latitude=51.5&longitude=-0.12&daily=temperature_2m_max,temperature_2m_min,weather_code,precipitation_probability_max&timezone=auto&temperature_unit=celsius
// - https://api.open-meteo.com/v1/forecast?latitude=51.5&longitude=-0.12&hourly=temperature_2m,precipitation,weather_code&timezone=auto&forecast_hours=24
const (
	BaseForecastURL = "https://api.open-meteo.com/v1/forecast"

	HourlyForecastHours = 24
)

var dailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"weather_code",
	"precipitation_probability_max",
}

var hourlyVars = []string{
	"temperature_2m",
	"precipitation",
	"weather_code",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return NewForecastClientWithURL(logger, BaseForecastURL, &http.Client{})
}

// NewForecastClientWithURL creates a client against a custom endpoint.
// This is useful for testing against an httptest server.
func NewForecastClientWithURL(logger *slog.Logger, baseURL string, httpClient *http.Client) *ForecastClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetDailyForecast fetches daily max/min temperature, weather code and
// precipitation probability. temperatureUnit is "celsius" or "fahrenheit".
func (c *ForecastClient) GetDailyForecast(ctx context.Context, latitude, longitude float64, temperatureUnit string) (*DailyForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("temperature_unit", temperatureUnit)
	u.RawQuery = q.Encode()

	var apiResp DailyForecastAPIResponse
	if err := c.get(ctx, u, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched daily forecast",
		"latitude", latitude,
		"longitude", longitude,
		"days", apiResp.DayCount(),
	)

	return &apiResp, nil
}

// GetHourlyForecast fetches temperature, precipitation and weather code for
// the next 24 hours
func (c *ForecastClient) GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*HourlyForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", formatCoordinate(latitude))
	q.Set("longitude", formatCoordinate(longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_hours", strconv.Itoa(HourlyForecastHours))
	u.RawQuery = q.Encode()

	var apiResp HourlyForecastAPIResponse
	if err := c.get(ctx, u, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched hourly forecast",
		"latitude", latitude,
		"longitude", longitude,
		"hours", apiResp.HourCount(),
	)

	return &apiResp, nil
}

func (c *ForecastClient) get(ctx context.Context, u *url.URL, dest any) error {
	c.logger.Debug("fetching Open-Meteo forecast", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch Open-Meteo forecast", "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.logger.Error("failed to decode Open-Meteo response", "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
