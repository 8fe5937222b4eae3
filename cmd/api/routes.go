package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/health", app.handleHealth)

	v1 := app.router.Group("/api/v1")

	// Location endpoints
	v1.GET("/locations/search", app.handleSearchLocations)

	// Forecast endpoints
	forecast := v1.Group("/forecast")
	forecast.GET("/week", app.handleGetWeeklyForecast)
	forecast.GET("/hourly", app.handleGetHourlyForecast)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
