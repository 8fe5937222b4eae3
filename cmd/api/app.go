package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"weather-bff/internal/config"
	"weather-bff/internal/location"
	"weather-bff/internal/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "weather-bff/docs" // Ensure docs are imported
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	weatherService  weather.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return newAppWithServices(cfg, logger,
		location.NewLocationService(logger, cfg.App.LocationsFile),
		weather.NewWeatherService(cfg, logger),
	)
}

func newAppWithServices(cfg *config.Config, logger *slog.Logger, locationService location.Service, weatherService weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(handleMethodNotAllowed)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	app := &App{
		router:          router,
		logger:          logger,
		locationService: locationService,
		weatherService:  weatherService,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized", "locations_file", cfg.App.LocationsFile)

	return app
}

func corsConfig(c config.CORSConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsCfg.ExposeHeaders = []string{requestIDHeader}
	if len(c.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = c.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests.
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	app.logger.Info("server stopped")
	return nil
}
