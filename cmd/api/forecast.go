package main

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"weather-bff/internal/types"

	"github.com/gin-gonic/gin"
)

// HourlyResponse wraps the hourly forecast entries
type HourlyResponse struct {
	Hourly []types.HourlyForecast `json:"hourly"`
}

type coordinateMessages struct {
	required string
	shape    string
	number   string
}

var (
	weekMessages = coordinateMessages{
		required: "Latitude and longitude are required query parameters.",
		shape:    "Latitude and longitude must be provided as strings in the query.",
		number:   "Latitude and longitude must be valid numbers.",
	}
	hourlyMessages = coordinateMessages{
		required: "lat and lon are required query parameters.",
		shape:    "lat and lon must be provided as strings in the query.",
		number:   "lat and lon must be valid numbers.",
	}
)

const msgInvalidUnits = "Invalid units parameter. Must be 'metric' or 'imperial'."

// handleGetWeeklyForecast godoc
// @Summary Get weekly forecast
// @Description Daily forecast for the coordinates, reshaped from Open-Meteo
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(51.5074)
// @Param longitude query number true "Longitude in decimal degrees" example(-0.1278)
// @Param units query string false "Unit system" Enums(metric, imperial) default(metric)
// @Success 200 {object} types.ForecastResult
// @Failure 400 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/forecast/week [get]
func (app *App) handleGetWeeklyForecast(c *gin.Context) {
	latitude, longitude, ok := parseCoordinates(c, "latitude", "longitude", weekMessages)
	if !ok {
		return
	}

	units := types.UnitsMetric
	if values, present := c.GetQueryArray("units"); present {
		if len(values) != 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidUnits})
			return
		}
		parsed, err := types.ParseUnits(values[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidUnits})
			return
		}
		units = parsed
	}

	forecast, err := app.weatherService.FetchWeekly(c.Request.Context(), latitude, longitude, units)
	if err != nil {
		app.writeError(c, err, "An unexpected server error occurred while fetching the forecast.",
			"latitude", latitude,
			"longitude", longitude,
			"units", units,
		)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// handleGetHourlyForecast godoc
// @Summary Get hourly forecast
// @Description The next 24 hours for the coordinates with a coarse condition label
// @Tags forecast
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" example(51.5074)
// @Param lon query number true "Longitude in decimal degrees" example(-0.1278)
// @Success 200 {object} HourlyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/forecast/hourly [get]
func (app *App) handleGetHourlyForecast(c *gin.Context) {
	latitude, longitude, ok := parseCoordinates(c, "lat", "lon", hourlyMessages)
	if !ok {
		return
	}

	hourly, err := app.weatherService.FetchHourly(c.Request.Context(), latitude, longitude)
	if err != nil {
		app.writeError(c, err, "Internal Server Error",
			"latitude", latitude,
			"longitude", longitude,
		)
		return
	}

	c.JSON(http.StatusOK, HourlyResponse{Hourly: hourly})
}

// parseCoordinates runs the presence, shape and number checks in that order
// and writes the 400 response itself when one fails.
func parseCoordinates(c *gin.Context, latKey, lonKey string, msgs coordinateMessages) (float64, float64, bool) {
	latValues := c.QueryArray(latKey)
	lonValues := c.QueryArray(lonKey)

	if missing(latValues) || missing(lonValues) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgs.required})
		return 0, 0, false
	}

	if len(latValues) > 1 || len(lonValues) > 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgs.shape})
		return 0, 0, false
	}

	latitude, latErr := parseNumber(latValues[0])
	longitude, lonErr := parseNumber(lonValues[0])
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgs.number})
		return 0, 0, false
	}

	return latitude, longitude, true
}

func missing(values []string) bool {
	return len(values) == 0 || (len(values) == 1 && values[0] == "")
}

// parseNumber accepts finite decimal numbers with surrounding whitespace
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
