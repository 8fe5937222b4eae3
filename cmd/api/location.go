package main

import (
	"net/http"
	"strings"

	"weather-bff/internal/types"

	"github.com/gin-gonic/gin"
)

// LocationsResponse wraps a search result
type LocationsResponse struct {
	Locations []types.Location `json:"locations"`
}

// handleSearchLocations godoc
// @Summary Search locations
// @Description Case-insensitive substring match on name, state or country, or an exact airport code match. Results keep the order of the bundled dataset.
// @Tags locations
// @Produce json
// @Param query query string true "Search text or airport code" example(Springfield)
// @Success 200 {object} LocationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 405 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/locations/search [get]
func (app *App) handleSearchLocations(c *gin.Context) {
	values := c.QueryArray("query")

	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter is required."})
		return
	}

	if len(values) > 1 || strings.TrimSpace(values[0]) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter must be a non-empty string."})
		return
	}

	locations, err := app.locationService.Search(values[0])
	if err != nil {
		app.writeError(c, err, "An unexpected server error occurred while searching for locations.",
			"query", values[0],
		)
		return
	}

	c.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}
